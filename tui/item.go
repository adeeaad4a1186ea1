package tui

import (
	"fmt"

	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/util"
)

// listItem implements list.Item for the values of one preference axis.
type listItem struct {
	internal interface{}
	current  bool
}

func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case theme.Mode:
		title = fmt.Sprintf("%s %s", icon.Mode(e), util.Capitalize(e.String()))
	case theme.Scheme:
		title = util.Capitalize(e.String())
	case theme.Design:
		title = util.Capitalize(e.String())
	default:
		title = t.FilterValue()
	}

	if t.current {
		title = fmt.Sprintf("%s %s", title, icon.Get(icon.Success))
	}

	return
}

func (t *listItem) Description() string {
	switch e := t.internal.(type) {
	case theme.Mode:
		switch e {
		case theme.Light:
			return "Always light"
		case theme.Dark:
			return "Always dark"
		default:
			return "Follow the system appearance"
		}
	case theme.Scheme:
		if e == theme.SchemeCustom {
			return "Your own palette"
		}
		light := palette.Light(e)
		return style.Swatch(light.Primary)
	case theme.Design:
		tokens := style.ForDesign(e)
		switch {
		case tokens.Gradient:
			return "Blended titles"
		case tokens.Translucent:
			return "Translucent panels"
		case tokens.Raised:
			return "Raised panels"
		case !tokens.HasBorder:
			return "No borders"
		default:
			return "Clean borders"
		}
	default:
		return ""
	}
}

func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case fmt.Stringer:
		return e.String()
	case string:
		return e
	default:
		return ""
	}
}
