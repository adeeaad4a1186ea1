// Package theme defines the preference axes a user can choose and the state aggregating them.
//
// Mode, Scheme and Design are independent. None of them is a resolved visual
// state: whether the UI is actually dark depends on the host appearance when
// Mode is Auto, and the palette is derived elsewhere from Scheme.
package theme

import (
	"strings"

	"github.com/samber/lo"
)

// Mode is the user's light/dark intent.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
	Auto  Mode = "auto"
)

// Scheme names a palette in the registry.
type Scheme string

const (
	SchemeDefault Scheme = "default"
	SchemeBlue    Scheme = "blue"
	SchemePurple  Scheme = "purple"
	SchemeGreen   Scheme = "green"
	SchemeOrange  Scheme = "orange"
	SchemeCustom  Scheme = "custom"
)

// Design is a cosmetic layout style tag. It never affects the palette.
type Design string

const (
	Modern        Design = "modern"
	Minimal       Design = "minimal"
	Glassmorphism Design = "glassmorphism"
	Neumorphism   Design = "neumorphism"
	Gradient      Design = "gradient"
)

// Field names as they appear in the persisted record.
const (
	FieldMode   = "mode"
	FieldScheme = "colorScheme"
	FieldDesign = "uiDesign"
)

// Modes returns every mode in display order.
func Modes() []Mode {
	return []Mode{Light, Dark, Auto}
}

// Schemes returns every color scheme in display order.
func Schemes() []Scheme {
	return []Scheme{SchemeDefault, SchemeBlue, SchemePurple, SchemeGreen, SchemeOrange, SchemeCustom}
}

// Designs returns every UI design in display order.
func Designs() []Design {
	return []Design{Modern, Minimal, Glassmorphism, Neumorphism, Gradient}
}

func (m Mode) String() string   { return string(m) }
func (s Scheme) String() string { return string(s) }
func (d Design) String() string { return string(d) }

func (m Mode) Valid() bool   { return lo.Contains(Modes(), m) }
func (s Scheme) Valid() bool { return lo.Contains(Schemes(), s) }
func (d Design) Valid() bool { return lo.Contains(Designs(), d) }

// ParseMode converts user or persisted input into a Mode.
func ParseMode(s string) (Mode, error) {
	return parse(FieldMode, s, Modes())
}

// ParseScheme converts user or persisted input into a Scheme.
func ParseScheme(s string) (Scheme, error) {
	return parse(FieldScheme, s, Schemes())
}

// ParseDesign converts user or persisted input into a Design.
func ParseDesign(s string) (Design, error) {
	return parse(FieldDesign, s, Designs())
}

func parse[T ~string](field, raw string, known []T) (T, error) {
	normalized := T(strings.ToLower(strings.TrimSpace(raw)))
	if lo.Contains(known, normalized) {
		return normalized, nil
	}

	var zero T
	return zero, &UnknownValueError{
		Field: field,
		Value: raw,
		Known: lo.Map(known, func(v T, _ int) string { return string(v) }),
	}
}

// MarshalText and UnmarshalText let the enums travel through viper, flags and JSON.

func (m Mode) MarshalText() ([]byte, error) { return []byte(m), nil }
func (m *Mode) UnmarshalText(b []byte) (err error) {
	*m, err = ParseMode(string(b))
	return
}

func (s Scheme) MarshalText() ([]byte, error) { return []byte(s), nil }
func (s *Scheme) UnmarshalText(b []byte) (err error) {
	*s, err = ParseScheme(string(b))
	return
}

func (d Design) MarshalText() ([]byte, error) { return []byte(d), nil }
func (d *Design) UnmarshalText(b []byte) (err error) {
	*d, err = ParseDesign(string(b))
	return
}
