package style

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/themer-cli/themer/color"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/theme"
)

// Styles is a palette and design rendered as lipgloss styles.
type Styles struct {
	Design Design
	Colors palette.Palette

	Panel    lipgloss.Style
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Badge    lipgloss.Style
}

// Build renders colors with the tokens of design.
func Build(colors palette.Palette, design theme.Design) Styles {
	tokens := ForDesign(design)

	background := colors.Background.Primary
	borderColor := colors.Border
	if tokens.Translucent {
		background = colors.Background.Secondary
		borderColor = colors.Text.Secondary
	}

	panel := New().
		Background(color.Hex(background)).
		Foreground(color.Hex(colors.Text.Primary)).
		Padding(tokens.PaddingY, tokens.PaddingX)

	if tokens.HasBorder {
		panel = panel.
			Border(tokens.Border).
			BorderForeground(color.Hex(borderColor))
	}

	if tokens.Raised {
		panel = panel.
			MarginBackground(color.Hex(colors.Background.Secondary)).
			Margin(0, 1)
	}

	return Styles{
		Design: tokens,
		Colors: colors,
		Panel:  panel,
		Title: New().
			Foreground(color.Hex(colors.Primary)).
			Bold(tokens.BoldTitles),
		Text:   New().Foreground(color.Hex(colors.Text.Primary)),
		Muted:  New().Foreground(color.Hex(colors.Text.Secondary)),
		Accent: New().Foreground(color.Hex(colors.Accent)),
		Selected: New().
			Foreground(color.Readable(colors.Primary)).
			Background(color.Hex(colors.Primary)).
			Padding(0, 1),
		Badge: New().
			Foreground(color.Readable(colors.Secondary)).
			Background(color.Hex(colors.Secondary)).
			Padding(0, 1),
	}
}

// RenderTitle renders s as a title, blending it into the accent color for
// gradient designs.
func (s Styles) RenderTitle(text string) string {
	if !s.Design.Gradient {
		return s.Title.Render(text)
	}

	return GradientText(text, s.Colors.Primary, s.Colors.Accent, s.Design.BoldTitles)
}

// GradientText colors each rune of text along a Lab blend from one hex color to another.
func GradientText(text, from, to string, bold bool) string {
	start, errFrom := colorful.Hex(from)
	end, errTo := colorful.Hex(to)
	if errFrom != nil || errTo != nil {
		return New().Bold(bold).Render(text)
	}

	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := start.BlendLab(end, t).Clamped()
		b.WriteString(New().Foreground(color.New(c.Hex())).Bold(bold).Render(string(r)))
	}

	return b.String()
}

// Swatch renders a color chip followed by its hex value.
func Swatch(hex string) string {
	chip := New().Background(color.Hex(hex)).Render("    ")
	return chip + " " + Faint(hex)
}
