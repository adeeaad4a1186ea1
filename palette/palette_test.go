package palette

import (
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/theme"
)

var sample = theme.Custom{
	Primary:             "#0EA5E9",
	Secondary:           "#0369A1",
	Accent:              "#F472B6",
	BackgroundPrimary:   "#FFFFFF",
	BackgroundSecondary: "#F1F5F9",
	TextPrimary:         "#0F172A",
	TextSecondary:       "#64748B",
	Border:              "#E2E8F0",
}

func TestRegistry(t *testing.T) {
	Convey("Palette registry", t, func() {
		Convey("Every scheme resolves to the same palette on repeated calls", func() {
			for _, scheme := range theme.Schemes() {
				for _, dark := range []bool{false, true} {
					first := For(scheme, dark)
					So(For(scheme, dark) == first, ShouldBeTrue)
					So(For(scheme, dark), ShouldResemble, first)
				}
			}
		})

		Convey("Every built-in scheme has both variants and they differ", func() {
			for _, scheme := range theme.Schemes() {
				if scheme == theme.SchemeCustom {
					continue
				}
				So(light, ShouldContainKey, scheme)
				So(dark, ShouldContainKey, scheme)
				So(Light(scheme), ShouldNotResemble, Dark(scheme))
				So(IsDark(Dark(scheme).Background.Primary), ShouldBeTrue)
				So(IsDark(Light(scheme).Background.Primary), ShouldBeFalse)
			}
		})

		Convey("Every table entry is a valid color", func() {
			for _, table := range []map[theme.Scheme]Palette{light, dark} {
				for _, p := range table {
					So(ValidateCustom(p.ToCustom()), ShouldBeNil)
				}
			}
		})

		Convey("Unknown schemes fall back to default", func() {
			So(Light(theme.Scheme("sepia")), ShouldResemble, Light(theme.SchemeDefault))
			So(Dark(theme.Scheme("sepia")), ShouldResemble, Dark(theme.SchemeDefault))
		})

		Convey("Custom without a user palette is an alias of default", func() {
			So(For(theme.SchemeCustom, false), ShouldResemble, For(theme.SchemeDefault, false))
			So(For(theme.SchemeCustom, true), ShouldResemble, For(theme.SchemeDefault, true))

			state := theme.Default()
			state.Scheme = theme.SchemeCustom
			So(Resolve(state, true), ShouldResemble, Dark(theme.SchemeDefault))
		})

		Convey("Names follow the scheme display order", func() {
			So(Names(), ShouldResemble, []string{"default", "blue", "purple", "green", "orange", "custom"})
		})

		Convey("Colors lists eight roles", func() {
			roles := Light(theme.SchemeBlue).Colors()
			So(roles, ShouldHaveLength, 8)
			So(roles[0].Name, ShouldEqual, "primary")
			So(roles[0].Hex, ShouldEqual, "#2563EB")
		})
	})
}

func TestCustom(t *testing.T) {
	Convey("Given a user-defined palette", t, func() {
		state := theme.Default()
		state.Scheme = theme.SchemeCustom
		state.Custom = mo.Some(sample)

		Convey("The light variant is the stored palette", func() {
			So(Resolve(state, false), ShouldResemble, FromCustom(sample))
			So(FromCustom(sample).ToCustom(), ShouldResemble, sample)
		})

		Convey("The dark variant is derived deterministically", func() {
			derived := Resolve(state, true)
			So(derived, ShouldResemble, Resolve(state, true))
			So(derived, ShouldResemble, Derive(FromCustom(sample)))

			So(IsDark(derived.Background.Primary), ShouldBeTrue)
			So(IsDark(derived.Background.Secondary), ShouldBeTrue)
			So(IsDark(derived.Text.Primary), ShouldBeFalse)
			So(ValidateCustom(derived.ToCustom()), ShouldBeNil)
		})

		Convey("Mirroring white yields black", func() {
			So(mirror("#ffffff"), ShouldEqual, "#000000")
		})

		Convey("Invalid colors are reported per role", func() {
			broken := sample
			broken.Accent = "pink"
			broken.Border = "#12"

			err := ValidateCustom(broken)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "accent")
			So(err.Error(), ShouldContainSubstring, "border")
			So(ValidateHex("#abc"), ShouldBeNil)
		})
	})
}
