package palette

import "github.com/lucasb-eyer/go-colorful"

// accentLift is how much CIE-L* lightness (0..1) accent roles gain in dark mode.
const accentLift = 0.12

// Derive turns a light palette into its dark counterpart.
//
// Surfaces, text and border swap ends of the lightness scale: their L* is
// mirrored (L' = 1 - L) while hue and chroma are kept. Accent roles keep
// their hue and gain a fixed amount of lightness so they stay readable on a
// dark background. The transform is pure and deterministic.
func Derive(light Palette) Palette {
	return Palette{
		Primary:   lift(light.Primary),
		Secondary: lift(light.Secondary),
		Accent:    lift(light.Accent),
		Background: Pair{
			Primary:   mirror(light.Background.Primary),
			Secondary: mirror(light.Background.Secondary),
		},
		Text: Pair{
			Primary:   mirror(light.Text.Primary),
			Secondary: mirror(light.Text.Secondary),
		},
		Border: mirror(light.Border),
	}
}

func mirror(hex string) string {
	return transform(hex, func(l float64) float64 { return 1 - l })
}

func lift(hex string) string {
	return transform(hex, func(l float64) float64 { return min(l+accentLift, 0.95) })
}

func transform(hex string, f func(l float64) float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}

	l, a, b := c.Lab()
	return colorful.Lab(f(l), a, b).Clamped().Hex()
}

// IsDark reports whether a color sits in the dark half of the lightness scale.
func IsDark(hex string) bool {
	c, err := colorful.Hex(hex)
	if err != nil {
		return false
	}
	l, _, _ := c.Lab()
	return l < 0.5
}
