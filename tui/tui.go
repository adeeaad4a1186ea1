// Package tui provides the interactive theme settings screen.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/themer-cli/themer/provider"
)

// Run opens the settings screen for the provider carried by ctx.
func Run(ctx context.Context) error {
	p, err := provider.FromContext(ctx)
	if err != nil {
		return err
	}

	bubble := newBubble(p)
	defer bubble.close()

	_, err = tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
