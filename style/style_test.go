package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/theme"
)

func TestForDesign(t *testing.T) {
	Convey("Given every ui design", t, func() {
		for _, design := range theme.Designs() {
			Convey("Then "+design.String()+" should map to its own tokens", func() {
				So(ForDesign(design).Name, ShouldEqual, design)
			})
		}
	})

	Convey("Given an unknown design", t, func() {
		Convey("Then it should render as modern", func() {
			So(ForDesign(theme.Design("brutalism")).Name, ShouldEqual, theme.Modern)
		})
	})

	Convey("Given the gradient design", t, func() {
		Convey("Then only it should blend titles", func() {
			for _, design := range theme.Designs() {
				So(ForDesign(design).Gradient, ShouldEqual, design == theme.Gradient)
			}
		})
	})
}

func TestBuild(t *testing.T) {
	Convey("Given a palette", t, func() {
		colors := palette.For(theme.SchemeBlue, false)

		Convey("When built with any design", func() {
			for _, design := range theme.Designs() {
				styles := Build(colors, design)

				Convey("Then "+design.String()+" should keep the palette untouched", func() {
					So(styles.Colors, ShouldResemble, colors)
					So(styles.RenderTitle("Themer"), ShouldContainSubstring, "r")
				})
			}
		})
	})
}

func TestGradientText(t *testing.T) {
	Convey("Given an empty string", t, func() {
		So(GradientText("", "#000000", "#ffffff", false), ShouldBeEmpty)
	})

	Convey("Given invalid colors", t, func() {
		Convey("Then the text should still be rendered", func() {
			So(GradientText("abc", "nope", "#ffffff", false), ShouldContainSubstring, "abc")
		})
	})
}

func TestSwatch(t *testing.T) {
	Convey("Given a hex color", t, func() {
		Convey("Then the swatch should show the value", func() {
			So(Swatch("#128C7E"), ShouldContainSubstring, "#128C7E")
		})
	})
}
