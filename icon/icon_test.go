package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/theme"
)

func TestGet(t *testing.T) {
	Convey("Given every registered icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for i := range icons {
						So(Get(i), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("It returns empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Success), ShouldBeEmpty)
		})
	})
}

func TestMode(t *testing.T) {
	Convey("Given the plain variant", t, func() {
		viper.Set(key.IconsVariant, plain)

		Convey("Then each mode should have a distinct icon", func() {
			So(Mode(theme.Light), ShouldNotEqual, Mode(theme.Dark))
			So(Mode(theme.Dark), ShouldNotEqual, Mode(theme.Auto))
			So(Mode(theme.Auto), ShouldEqual, Get(Auto))
		})
	})
}
