package theme

import "github.com/samber/mo"

// Custom is a user-defined light palette for SchemeCustom, as hex colors.
type Custom struct {
	Primary             string `json:"primary"`
	Secondary           string `json:"secondary"`
	Accent              string `json:"accent"`
	BackgroundPrimary   string `json:"backgroundPrimary"`
	BackgroundSecondary string `json:"backgroundSecondary"`
	TextPrimary         string `json:"textPrimary"`
	TextSecondary       string `json:"textSecondary"`
	Border              string `json:"border"`
}

// State is the mutable aggregate of preferences.
type State struct {
	Mode   Mode
	Scheme Scheme
	Design Design
	Custom mo.Option[Custom]
}

// Default returns the preferences of a process that never saved anything.
func Default() State {
	return State{
		Mode:   Light,
		Scheme: SchemeDefault,
		Design: Modern,
		Custom: mo.None[Custom](),
	}
}

// Equal reports whether both states hold the same preferences.
func (s State) Equal(other State) bool {
	if s.Mode != other.Mode || s.Scheme != other.Scheme || s.Design != other.Design {
		return false
	}

	a, aok := s.Custom.Get()
	b, bok := other.Custom.Get()
	return aok == bok && a == b
}

// IsDark resolves the effective darkness for this state given the host preference.
func (s State) IsDark(hostPrefersDark bool) bool {
	return s.Mode == Dark || (s.Mode == Auto && hostPrefersDark)
}
