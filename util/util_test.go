package util

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "scheme", "schemes"), ShouldEqual, "1 scheme")
		So(Quantify(6, "scheme", "schemes"), ShouldEqual, "6 schemes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("purple"), ShouldEqual, "Purple")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Max[int](), ShouldEqual, 0)
	})

	Convey("Clamp", t, func() {
		So(Clamp(7, 0, 5), ShouldEqual, 5)
		So(Clamp(-1, 0, 5), ShouldEqual, 0)
		So(Clamp(3, 0, 5), ShouldEqual, 3)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory with a file", t, func() {
		So(filesystem.API().MkdirAll("/tmp/themer/a", 0o755), ShouldBeNil)
		So(filesystem.API().WriteFile("/tmp/themer/a/b.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("When the directory is deleted", func() {
			So(Delete("/tmp/themer/a"), ShouldBeNil)

			Convey("Then nothing should remain", func() {
				So(lo.Must(filesystem.API().Exists("/tmp/themer/a")), ShouldBeFalse)
			})
		})

		Convey("When a missing path is deleted", func() {
			Convey("Then an error should be returned", func() {
				So(Delete("/tmp/themer/missing"), ShouldNotBeNil)
			})
		})
	})
}
