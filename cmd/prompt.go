package cmd

import (
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/themer-cli/themer/palette"
	"golang.org/x/term"
)

// askOne is swapped in tests.
var askOne = survey.AskOne

// stdinIsTerminal reports whether prompts can be answered.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func addYesFlag(cmd *cobra.Command) {
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// confirm asks before a destructive action. It does not ask when --yes is
// given or stdin is not a terminal.
func confirm(cmd *cobra.Command, message string) bool {
	if lo.Must(cmd.Flags().GetBool("yes")) || !stdinIsTerminal() {
		return true
	}

	var response bool
	handleErr(askOne(&survey.Confirm{Message: message, Default: false}, &response))
	return response
}

func validateHexAnswer(ans interface{}) error {
	s, ok := ans.(string)
	if !ok {
		return errors.New("expected a hex color")
	}
	return palette.ValidateHex(s)
}

// askColors prompts for every role, offering the current value as default.
func askColors(roles []palette.Role) (map[string]string, error) {
	answers := make(map[string]string, len(roles))

	for _, role := range roles {
		input := &survey.Input{
			Message: role.Name,
			Default: role.Hex,
			Help:    "A hex color such as #0F766E",
		}

		var response string
		if err := askOne(input, &response, survey.WithValidator(validateHexAnswer)); err != nil {
			return nil, err
		}

		answers[role.Name] = response
	}

	return answers, nil
}
