package tui

import tea "github.com/charmbracelet/bubbletea"

// snapshotMsg reports that the provider published a new snapshot.
type snapshotMsg struct{}

func (b *statefulBubble) Init() tea.Cmd {
	return b.waitForSnapshot()
}

// waitForSnapshot blocks until the provider signals a change or the
// screen is closed.
func (b *statefulBubble) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.changed:
			return snapshotMsg{}
		case <-b.done:
			return nil
		}
	}
}
