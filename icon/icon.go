// Package icon renders UI symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as plain ASCII, emoji or nerd-font glyphs.
package icon

import (
	"github.com/spf13/viper"
	"github.com/themer-cli/themer/key"
	"github.com/themer-cli/themer/theme"
)

const (
	plain = "plain"
	emoji = "emoji"
	nerd  = "nerd"
)

// AvailableVariants returns every accepted icons.variant value.
func AvailableVariants() []string {
	return []string{plain, emoji, nerd}
}

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Warn
	Progress
	Light
	Dark
	Auto
	Palette
	Design
	Selected
)

type iconDef struct {
	plain string
	emoji string
	nerd  string
}

var icons = map[Icon]iconDef{
	Success:  {plain: "✓", emoji: "✅", nerd: ""},
	Fail:     {plain: "✗", emoji: "❌", nerd: ""},
	Warn:     {plain: "!", emoji: "⚠️", nerd: ""},
	Progress: {plain: "…", emoji: "⏳", nerd: ""},
	Light:    {plain: "○", emoji: "☀️", nerd: ""},
	Dark:     {plain: "●", emoji: "🌙", nerd: ""},
	Auto:     {plain: "◐", emoji: "🌗", nerd: ""},
	Palette:  {plain: "#", emoji: "🎨", nerd: ""},
	Design:   {plain: "*", emoji: "✨", nerd: ""},
	Selected: {plain: ">", emoji: "👉", nerd: ""},
}

// Get returns the variant selected by icons.variant, or "" for an unknown variant.
func (d iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case plain:
		return d.plain
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	default:
		return ""
	}
}

func Get(i Icon) string {
	return icons[i].Get()
}

// Mode returns the icon for a theme mode.
func Mode(m theme.Mode) string {
	switch m {
	case theme.Dark:
		return Get(Dark)
	case theme.Auto:
		return Get(Auto)
	default:
		return Get(Light)
	}
}
