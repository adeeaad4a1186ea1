package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/themer-cli/themer/theme"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		b.refresh()
		return b, b.waitForSnapshot()
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return b, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, b.keymap.forceQuit, b.keymap.quit):
			return b, tea.Quit
		case key.Matches(msg, b.keymap.next):
			b.setState(b.state.next())
			b.sync()
			return b, nil
		case key.Matches(msg, b.keymap.prev):
			b.setState(b.state.prev())
			b.sync()
			return b, nil
		case key.Matches(msg, b.keymap.toggle):
			b.snapshot = b.provider.ToggleMode()
			b.sync()
			return b, nil
		case key.Matches(msg, b.keymap.reset):
			b.snapshot = b.provider.Reset()
			b.sync()
			return b, nil
		case key.Matches(msg, b.keymap.confirm):
			b.apply(b.current().SelectedItem())
			return b, nil
		case key.Matches(msg, b.keymap.showHelp):
			b.helpC.ShowAll = !b.helpC.ShowAll
			return b, nil
		}
	}

	return b, b.updateList(msg)
}

// apply stores the value under the cursor.
func (b *statefulBubble) apply(item list.Item) {
	li, ok := item.(*listItem)
	if !ok {
		return
	}

	switch value := li.internal.(type) {
	case theme.Mode:
		b.snapshot = b.provider.SetMode(value)
	case theme.Scheme:
		b.snapshot = b.provider.SetColorScheme(value)
	case theme.Design:
		b.snapshot = b.provider.SetUIDesign(value)
	default:
		return
	}

	b.sync()
}

func (b *statefulBubble) updateList(msg tea.Msg) tea.Cmd {
	l := b.current()
	updated, cmd := l.Update(msg)
	*l = updated
	return cmd
}
