package theme

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Parsing enum values", t, func() {
		Convey("Known values are accepted case-insensitively", func() {
			m, err := ParseMode(" DARK ")
			So(err, ShouldBeNil)
			So(m, ShouldEqual, Dark)

			s, err := ParseScheme("Purple")
			So(err, ShouldBeNil)
			So(s, ShouldEqual, SchemePurple)

			d, err := ParseDesign("glassmorphism")
			So(err, ShouldBeNil)
			So(d, ShouldEqual, Glassmorphism)
		})

		Convey("Unknown values yield an UnknownValueError naming the field", func() {
			_, err := ParseScheme("nonexistent")
			So(err, ShouldNotBeNil)

			var unknown *UnknownValueError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Field, ShouldEqual, FieldScheme)
			So(unknown.Value, ShouldEqual, "nonexistent")
			So(unknown.Suggestion(), ShouldBeEmpty)
		})

		Convey("Near misses carry a suggestion", func() {
			_, err := ParseDesign("minimall")
			var unknown *UnknownValueError
			So(errors.As(err, &unknown), ShouldBeTrue)
			So(unknown.Suggestion(), ShouldEqual, "minimal")
			So(err.Error(), ShouldContainSubstring, `did you mean "minimal"?`)
		})

		Convey("Every listed value is valid", func() {
			for _, m := range Modes() {
				So(m.Valid(), ShouldBeTrue)
			}
			for _, s := range Schemes() {
				So(s.Valid(), ShouldBeTrue)
			}
			for _, d := range Designs() {
				So(d.Valid(), ShouldBeTrue)
			}
			So(Mode("sepia").Valid(), ShouldBeFalse)
		})

		Convey("UnmarshalText goes through the parser", func() {
			var m Mode
			So(m.UnmarshalText([]byte("Auto")), ShouldBeNil)
			So(m, ShouldEqual, Auto)
			So(m.UnmarshalText([]byte("dim")), ShouldNotBeNil)
		})
	})
}

func TestState(t *testing.T) {
	Convey("Given the default state", t, func() {
		s := Default()

		So(s.Mode, ShouldEqual, Light)
		So(s.Scheme, ShouldEqual, SchemeDefault)
		So(s.Design, ShouldEqual, Modern)
		So(s.Custom.IsAbsent(), ShouldBeTrue)

		Convey("Effective darkness follows the mode", func() {
			So(s.IsDark(true), ShouldBeFalse)

			s.Mode = Dark
			So(s.IsDark(false), ShouldBeTrue)

			s.Mode = Auto
			So(s.IsDark(true), ShouldBeTrue)
			So(s.IsDark(false), ShouldBeFalse)
		})

		Convey("Equal compares the custom palette too", func() {
			other := Default()
			So(s.Equal(other), ShouldBeTrue)

			other.Custom = mo.Some(Custom{Primary: "#112233"})
			So(s.Equal(other), ShouldBeFalse)

			s.Custom = mo.Some(Custom{Primary: "#112233"})
			So(s.Equal(other), ShouldBeTrue)
		})
	})
}
