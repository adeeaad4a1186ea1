package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/appearance"
	"github.com/themer-cli/themer/config"
	"github.com/themer-cli/themer/filesystem"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/provider"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/theme"
)

func init() {
	filesystem.SetMemMapFs()
}

func newYesCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addYesFlag(cmd)
	return cmd
}

func TestExpand(t *testing.T) {
	Convey("Given the scheme and design names", t, func() {
		schemes := stringsOf(theme.Schemes())
		designs := stringsOf(theme.Designs())

		Convey("Exact names should be kept", func() {
			So(expand("purple", schemes), ShouldEqual, "purple")
		})

		Convey("An unambiguous abbreviation should be expanded", func() {
			So(expand("purp", schemes), ShouldEqual, "purple")
			So(expand("glass", designs), ShouldEqual, "glassmorphism")
		})

		Convey("Ambiguous or unknown input should be returned unchanged", func() {
			So(expand("e", schemes), ShouldEqual, "e")
			So(expand("zzz", designs), ShouldEqual, "zzz")
		})
	})
}

func TestCompleteFrom(t *testing.T) {
	Convey("Given a completion func over the schemes", t, func() {
		complete := completeFrom(func() []string { return stringsOf(theme.Schemes()) })

		Convey("It should offer fuzzy matches for the first argument", func() {
			names, _ := complete(nil, nil, "gre")
			So(names, ShouldContain, "green")
			So(names, ShouldNotContain, "blue")
		})

		Convey("It should offer nothing once an argument is given", func() {
			names, _ := complete(nil, []string{"green"}, "")
			So(names, ShouldBeEmpty)
		})
	})
}

func TestParseValue(t *testing.T) {
	Convey("Given the registered config fields", t, func() {
		Convey("Enumerated strings should be checked against known values", func() {
			v, err := parseValue(config.Default[key.StorageBackend], []string{storage.BackendKeyring})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, storage.BackendKeyring)

			_, err = parseValue(config.Default[key.StorageBackend], []string{"keyrnig"})
			var unknown *theme.UnknownValueError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Suggestion(), ShouldEqual, storage.BackendKeyring)
		})

		Convey("Durations should be parsed and must be positive", func() {
			v, err := parseValue(config.Default[key.AppearancePollInterval], []string{"500ms"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 500*time.Millisecond)

			_, err = parseValue(config.Default[key.AppearancePollInterval], []string{"0s"})
			So(err, ShouldNotBeNil)

			_, err = parseValue(config.Default[key.AppearancePollInterval], []string{"soon"})
			So(err, ShouldNotBeNil)
		})

		Convey("Lists should check every element", func() {
			v, err := parseValue(config.Default[key.AppearanceDetectors], []string{appearance.DetectorEnv, appearance.DetectorTerminal})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{appearance.DetectorEnv, appearance.DetectorTerminal})

			_, err = parseValue(config.Default[key.AppearanceDetectors], []string{appearance.DetectorEnv, "bogus"})
			So(err, ShouldNotBeNil)
		})

		Convey("Booleans should be parsed", func() {
			v, err := parseValue(config.Default[key.LogsWrite], []string{"true"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, true)

			_, err = parseValue(config.Default[key.LogsWrite], []string{"sometimes"})
			So(err, ShouldNotBeNil)
		})

		Convey("A missing value should be rejected", func() {
			_, err := parseValue(config.Default[key.LogsLevel], nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSnapshotOutput(t *testing.T) {
	Convey("Given a provider with a purple scheme", t, func() {
		p := provider.New(storage.NewMemory(), appearance.NewStatic(false))
		defer p.Close()

		s := p.SetColorScheme(theme.SchemePurple)

		Convey("The json form should use the record field names", func() {
			var out bytes.Buffer
			So(jsonLine(&out, toJSON(s)), ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(out.Bytes(), &decoded), ShouldBeNil)
			So(decoded[theme.FieldScheme], ShouldEqual, "purple")
			So(decoded[theme.FieldMode], ShouldEqual, "light")
			So(decoded["isDark"], ShouldEqual, false)
		})

		Convey("The text form should name the scheme", func() {
			var out bytes.Buffer
			printSnapshot(&out, s, true)
			So(out.String(), ShouldContainSubstring, "purple")
		})
	})
}

func TestPrompts(t *testing.T) {
	Convey("Given scripted answers", t, func() {
		realAsk, realTerminal := askOne, stdinIsTerminal
		Reset(func() {
			askOne, stdinIsTerminal = realAsk, realTerminal
		})

		var asked []string
		confirmAnswer := false
		askOne = func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
			switch r := response.(type) {
			case *bool:
				asked = append(asked, p.(*survey.Confirm).Message)
				*r = confirmAnswer
			case *string:
				input := p.(*survey.Input)
				asked = append(asked, input.Message)
				*r = input.Default
				if input.Message == "accent" {
					*r = "#F59E0B"
				}
			}
			return nil
		}

		cmd := newYesCommand()

		Convey("A terminal user should be asked to confirm", func() {
			stdinIsTerminal = func() bool { return true }
			So(confirm(cmd, "Forget the saved theme?"), ShouldBeFalse)
			So(asked, ShouldResemble, []string{"Forget the saved theme?"})

			confirmAnswer = true
			So(confirm(cmd, "Forget the saved theme?"), ShouldBeTrue)
		})

		Convey("--yes should skip the question", func() {
			stdinIsTerminal = func() bool { return true }
			So(cmd.Flags().Set("yes", "true"), ShouldBeNil)
			So(confirm(cmd, "Forget the saved theme?"), ShouldBeTrue)
			So(asked, ShouldBeEmpty)
		})

		Convey("A script without a terminal should not be asked", func() {
			stdinIsTerminal = func() bool { return false }
			So(confirm(cmd, "Forget the saved theme?"), ShouldBeTrue)
			So(asked, ShouldBeEmpty)
		})

		Convey("Every palette role should be asked for", func() {
			base := palette.Light(theme.SchemeBlue)
			answers, err := askColors(base.Colors())
			So(err, ShouldBeNil)
			So(len(asked), ShouldEqual, len(base.Colors()))
			So(answers["accent"], ShouldEqual, "#F59E0B")
			So(answers["primary"], ShouldEqual, base.Primary)
		})
	})

	Convey("Given typed colors", t, func() {
		So(validateHexAnswer("#0F766E"), ShouldBeNil)
		So(validateHexAnswer("teal"), ShouldNotBeNil)
		So(validateHexAnswer(42), ShouldNotBeNil)
	})
}

func TestPreviewCustom(t *testing.T) {
	Convey("Given the custom scheme", t, func() {
		var out bytes.Buffer

		Convey("With a stored palette it should render that palette", func() {
			custom := palette.Light(theme.SchemeOrange).ToCustom()
			custom.Primary = "#123456"
			renderPreview(&out, []theme.Scheme{theme.SchemeCustom}, mo.Some(custom))

			So(out.String(), ShouldContainSubstring, "#123456")
			So(out.String(), ShouldNotContainSubstring, "same as default")
		})

		Convey("Without one it should say it renders as default", func() {
			renderPreview(&out, []theme.Scheme{theme.SchemeCustom}, mo.None[theme.Custom]())
			So(out.String(), ShouldContainSubstring, "same as default")
		})
	})
}

func TestGettersWriteToStdout(t *testing.T) {
	Convey("Given a memory backed theme", t, func() {
		var out, errOut bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&errOut)
		Reset(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetErr(nil)
			rootCmd.SetArgs(nil)
		})

		for _, getter := range []struct{ args, want string }{
			{"mode", theme.Default().Mode.String()},
			{"scheme", theme.Default().Scheme.String()},
			{"design", theme.Default().Design.String()},
		} {
			args, want := getter.args, getter.want
			Convey("themer "+args+" should print its value for scripts", func() {
				rootCmd.SetArgs([]string{args, "--storage", "memory", "--appearance", "light"})
				So(rootCmd.Execute(), ShouldBeNil)
				So(strings.TrimSpace(out.String()), ShouldEqual, want)
				So(errOut.String(), ShouldBeEmpty)
			})
		}
	})
}
