package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/themer-cli/themer/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldEndWith, "themer")
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Storage() lives inside the config dir", func() {
			So(filepath.Dir(Storage()), ShouldEqual, Config())
		})

		Convey("THEMER_CONFIG_PATH overrides the config dir", func() {
			t.Setenv(EnvConfigPath, "/custom/themer")
			So(Config(), ShouldEqual, "/custom/themer")
			So(lo.Must(filesystem.API().IsDir("/custom/themer")), ShouldBeTrue)
		})
	})
}
