package appearance

import (
	"context"
	"errors"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/theme"
)

type fakeDetector struct {
	name      string
	priority  int
	available bool
	ok        bool
	dark      atomic.Bool
}

func (f *fakeDetector) Name() string        { return f.name }
func (f *fakeDetector) Priority() int       { return f.priority }
func (f *fakeDetector) Available() bool     { return f.available }
func (f *fakeDetector) Detect() (bool, bool) { return f.dark.Load(), f.ok }

func reply(out string, err error) runner {
	return func(context.Context, string, ...string) ([]byte, error) {
		return []byte(out), err
	}
}

func TestResolver(t *testing.T) {
	Convey("Given detectors with different priorities", t, func() {
		low := &fakeDetector{name: "low", priority: 1, available: true, ok: true}
		high := &fakeDetector{name: "high", priority: 9, available: true, ok: true}
		high.dark.Store(true)

		resolver := NewResolver(low, high)

		Convey("Then the highest priority answer should win", func() {
			So(resolver.Names(), ShouldResemble, []string{"high", "low"})
			So(resolver.Resolve(), ShouldResemble, Preference{Dark: true, Source: "high"})
		})

		Convey("When the preferred detector cannot answer", func() {
			high.ok = false

			Convey("Then the next one should be asked", func() {
				So(resolver.Resolve(), ShouldResemble, Preference{Dark: false, Source: "low"})
			})
		})

		Convey("When no detector is available", func() {
			high.available = false
			low.available = false

			Convey("Then the preference should fall back to light", func() {
				So(resolver.Resolve(), ShouldResemble, Preference{})
			})
		})
	})

	Convey("Given detector names from settings", t, func() {
		detectors := Detectors([]string{"env", "Terminal", "env", "plasma"})

		Convey("Then known names should be built once and unknown ones skipped", func() {
			So(len(detectors), ShouldEqual, 2)
			So(detectors[0].Name(), ShouldEqual, DetectorEnv)
			So(detectors[1].Name(), ShouldEqual, DetectorTerminal)
		})
	})
}

func TestDetectors(t *testing.T) {
	Convey("Given the environment detector", t, func() {
		Convey("When the variable says dark", func() {
			t.Setenv(EnvAppearance, "Dark")

			Convey("Then it should detect dark", func() {
				So(Env{}.Available(), ShouldBeTrue)
				dark, ok := Env{}.Detect()
				So(ok, ShouldBeTrue)
				So(dark, ShouldBeTrue)
			})
		})

		Convey("When the variable holds garbage", func() {
			t.Setenv(EnvAppearance, "dim")

			Convey("Then it should not answer", func() {
				_, ok := Env{}.Detect()
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given the gsettings detector", t, func() {
		cases := map[string][2]bool{
			"'prefer-dark'\n":  {true, true},
			"'prefer-light'\n": {false, true},
			"'default'\n":      {false, true},
			"'something'\n":    {false, false},
		}

		for out, want := range cases {
			Convey("When gsettings prints "+out, func() {
				dark, ok := (&GSettings{run: reply(out, nil)}).Detect()

				Convey("Then the answer should match", func() {
					So(dark, ShouldEqual, want[0])
					So(ok, ShouldEqual, want[1])
				})
			})
		}

		Convey("When gsettings fails", func() {
			_, ok := (&GSettings{run: reply("", errors.New("no schema"))}).Detect()

			Convey("Then it should not answer", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})

	Convey("Given the macOS detector", t, func() {
		Convey("When the style key says Dark", func() {
			dark, ok := (&MacOS{run: reply("Dark\n", nil)}).Detect()

			Convey("Then it should detect dark", func() {
				So(ok, ShouldBeTrue)
				So(dark, ShouldBeTrue)
			})
		})

		Convey("When the style key is missing", func() {
			exitErr := exec.Command("false").Run()
			dark, ok := (&MacOS{run: reply("", exitErr)}).Detect()

			Convey("Then it should detect light", func() {
				So(ok, ShouldBeTrue)
				So(dark, ShouldBeFalse)
			})
		})

		Convey("When defaults cannot run", func() {
			_, ok := (&MacOS{run: reply("", exec.ErrNotFound)}).Detect()

			Convey("Then it should not answer", func() {
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestStatic(t *testing.T) {
	Convey("Given a static light source with a listener", t, func() {
		source := NewStatic(false)

		var calls []bool
		unsubscribe := source.OnChange(func(dark bool) {
			calls = append(calls, dark)
		})

		Convey("When it flips to dark", func() {
			source.Set(true)

			Convey("Then the listener should be told once", func() {
				So(source.PrefersDark(), ShouldBeTrue)
				So(calls, ShouldResemble, []bool{true})
			})

			Convey("Then setting the same value again should be silent", func() {
				source.Set(true)
				So(calls, ShouldResemble, []bool{true})
			})
		})

		Convey("When the listener unsubscribes", func() {
			unsubscribe()
			unsubscribe()
			source.Set(true)

			Convey("Then it should not be called", func() {
				So(calls, ShouldBeEmpty)
				So(source.Listeners(), ShouldEqual, 0)
			})
		})
	})
}

func TestWatcher(t *testing.T) {
	Convey("Given a watcher over a detector that starts light", t, func() {
		detector := &fakeDetector{name: "fake", priority: 1, available: true, ok: true}
		watcher := NewWatcher(NewResolver(detector), 5*time.Millisecond)
		defer watcher.Stop()

		flips := make(chan bool, 4)
		watcher.OnChange(func(dark bool) { flips <- dark })

		So(watcher.PrefersDark(), ShouldBeFalse)

		Convey("When the host turns dark", func() {
			detector.dark.Store(true)

			Convey("Then listeners should receive the flip", func() {
				select {
				case dark := <-flips:
					So(dark, ShouldBeTrue)
				case <-time.After(time.Second):
					So("no flip received", ShouldBeEmpty)
				}

				So(watcher.PrefersDark(), ShouldBeTrue)
				So(watcher.Current().Source, ShouldEqual, "fake")
			})
		})

		Convey("When nothing changes", func() {
			time.Sleep(30 * time.Millisecond)

			Convey("Then listeners should not be called", func() {
				So(len(flips), ShouldEqual, 0)
			})
		})

		Convey("When it is stopped twice", func() {
			So(func() {
				watcher.Stop()
				watcher.Stop()
			}, ShouldNotPanic)
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Given appearance overrides", t, func() {
		Convey("Then light and dark should be fixed sources", func() {
			light, err := Open("light")
			So(err, ShouldBeNil)
			So(light.PrefersDark(), ShouldBeFalse)

			dark, err := Open("DARK")
			So(err, ShouldBeNil)
			So(dark.PrefersDark(), ShouldBeTrue)
		})

		Convey("Then system should follow the host", func() {
			source, err := Open("system")
			So(err, ShouldBeNil)
			defer source.Stop()

			_, ok := source.(*Watcher)
			So(ok, ShouldBeTrue)
		})

		Convey("Then an unknown override should suggest a value", func() {
			_, err := Open("drak")

			var unknown *theme.UnknownValueError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Suggestion(), ShouldEqual, OverrideDark)
		})
	})
}
