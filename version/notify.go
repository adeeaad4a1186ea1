package version

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/constant"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/style"
)

// Notify prints a notice when a newer release exists. Lookup failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/themer-cli/themer/releases/tag/v"+latest),
	)
}
