// Package color holds the ANSI colors used by CLI output and converts
// palette hex values into terminal colors.
package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// New initializes a lipgloss.Color from a string value.
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity variants.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
)

var (
	Orange = New("#ffb703")
	Gray   = New("#808080")
)

// Hex converts a palette color into a terminal color. Invalid input yields
// the terminal default.
func Hex(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}
	return New(c.Hex())
}

// Readable returns black or white, whichever contrasts more with hex.
func Readable(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ""
	}

	l, _, _ := c.Lab()
	if l > 0.6 {
		return New("#000000")
	}
	return New("#ffffff")
}
