package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestHex(t *testing.T) {
	Convey("Given palette hex values", t, func() {
		Convey("Then short and long forms should normalize to lowercase #rrggbb", func() {
			So(string(Hex("#FFF")), ShouldEqual, "#ffffff")
			So(string(Hex("#128C7E")), ShouldEqual, "#128c7e")
		})

		Convey("Then invalid input should fall back to the terminal default", func() {
			So(string(Hex("teal")), ShouldBeEmpty)
			So(string(Readable("teal")), ShouldBeEmpty)
		})
	})

	Convey("Given light and dark backgrounds", t, func() {
		Convey("Then readable text should contrast", func() {
			So(string(Readable("#FFFFFF")), ShouldEqual, "#000000")
			So(string(Readable("#111B21")), ShouldEqual, "#ffffff")
		})
	})
}
