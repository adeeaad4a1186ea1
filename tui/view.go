package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/themer-cli/themer/icon"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/style"
	"github.com/themer-cli/themer/theme"
	"github.com/themer-cli/themer/util"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	lists := listExtraPaddingStyle.Render(b.current().View())
	preview := b.viewPreview()

	body := lipgloss.JoinHorizontal(lipgloss.Top, lists, preview)

	return paddingStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		b.viewTabs(),
		body,
		b.helpC.View(b.keymap),
	))
}

func (b *statefulBubble) viewTabs() string {
	styles := style.Build(b.snapshot.Colors, b.snapshot.Design)

	tabs := make([]string, len(states))
	for i, s := range states {
		if s == b.state {
			tabs[i] = styles.Selected.Render(s.String())
		} else {
			tabs[i] = styles.Muted.Padding(0, 1).Render(s.String())
		}
	}

	return strings.Join(tabs, " ")
}

// previewState is the stored state with the hovered value applied.
func (b *statefulBubble) previewState() (state theme.State, dark bool) {
	state = b.snapshot.State()
	dark = b.snapshot.IsDark

	li, ok := b.current().SelectedItem().(*listItem)
	if !ok {
		return
	}

	switch value := li.internal.(type) {
	case theme.Mode:
		state.Mode = value
		switch value {
		case theme.Light:
			dark = false
		case theme.Dark:
			dark = true
		case theme.Auto:
			dark = b.provider.HostPrefersDark()
		}
	case theme.Scheme:
		state.Scheme = value
	case theme.Design:
		state.Design = value
	}

	return
}

func (b *statefulBubble) viewPreview() string {
	state, dark := b.previewState()
	styles := style.Build(palette.Resolve(state, dark), state.Design)

	mode := icon.Mode(state.Mode)
	lines := []string{
		styles.RenderTitle("Preview"),
		"",
		fmt.Sprintf("%s %s", mode, styles.Text.Render(util.Capitalize(state.Scheme.String()))),
		styles.Badge.Render(state.Design.String()),
		"",
	}

	for _, role := range styles.Colors.Colors() {
		lines = append(lines, fmt.Sprintf("%-22s %s", role.Name, style.Swatch(role.Hex)))
	}

	lines = append(lines, "", styles.Accent.Render("accent"), styles.Muted.Render("secondary text"))

	width := util.Max(b.width-b.current().Width()-8, 20)
	content := wrap.String(strings.Join(lines, "\n"), width)

	return styles.Panel.Render(content)
}
