package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/constant"
)

func TestCommand(t *testing.T) {
	Convey("Given a config file path", t, func() {
		path := "/home/user/.config/themer/themer.toml"

		Convey("The default handler should depend on the platform", func() {
			cmd, ok := command(constant.Linux, path, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"xdg-open", path})

			cmd, ok = command(constant.Darwin, path, "")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", path})
		})

		Convey("A named application should be launched with the path", func() {
			cmd, ok := command(constant.Linux, path, "vim")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"vim", path})

			cmd, ok = command(constant.Darwin, path, "TextEdit")
			So(ok, ShouldBeTrue)
			So(cmd.Args, ShouldResemble, []string{"open", "-a", "TextEdit", path})
		})

		Convey("Unknown platforms should be rejected", func() {
			_, ok := command("plan9", path, "")
			So(ok, ShouldBeFalse)
		})
	})
}
