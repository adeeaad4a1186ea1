package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/themer-cli/themer/theme"
)

// Design holds the rendering tokens for a theme.Design.
type Design struct {
	Name theme.Design

	Border    lipgloss.Border
	HasBorder bool

	// PaddingY and PaddingX are applied inside panels.
	PaddingY, PaddingX int

	BoldTitles bool
	// Gradient blends titles from the primary to the accent color.
	Gradient bool
	// Translucent panels use the secondary background and muted borders.
	Translucent bool
	// Raised panels get a second border in the secondary background color.
	Raised bool
}

// ForDesign maps every design to its tokens. Unknown designs render as modern.
func ForDesign(d theme.Design) Design {
	switch d {
	case theme.Minimal:
		return Design{
			Name:     theme.Minimal,
			PaddingY: 0,
			PaddingX: 1,
		}
	case theme.Glassmorphism:
		return Design{
			Name:        theme.Glassmorphism,
			Border:      lipgloss.RoundedBorder(),
			HasBorder:   true,
			PaddingY:    1,
			PaddingX:    2,
			Translucent: true,
		}
	case theme.Neumorphism:
		return Design{
			Name:       theme.Neumorphism,
			Border:     lipgloss.ThickBorder(),
			HasBorder:  true,
			PaddingY:   1,
			PaddingX:   2,
			BoldTitles: true,
			Raised:     true,
		}
	case theme.Gradient:
		return Design{
			Name:       theme.Gradient,
			Border:     lipgloss.DoubleBorder(),
			HasBorder:  true,
			PaddingY:   0,
			PaddingX:   2,
			BoldTitles: true,
			Gradient:   true,
		}
	default:
		return Design{
			Name:       theme.Modern,
			Border:     lipgloss.NormalBorder(),
			HasBorder:  true,
			PaddingY:   0,
			PaddingX:   1,
			BoldTitles: true,
		}
	}
}
