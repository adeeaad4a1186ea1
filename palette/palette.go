// Package palette maps color schemes to concrete color tokens.
//
// Built-in schemes carry two explicit tables, one per variant. The only
// computed palette is the dark variant of a user-defined custom palette,
// produced by Derive.
package palette

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"github.com/themer-cli/themer/theme"
)

// Pair holds the primary and secondary shade of a surface role.
type Pair struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Palette is the set of color tokens consumed by rendering code.
type Palette struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background Pair   `json:"background"`
	Text       Pair   `json:"text"`
	Border     string `json:"border"`
}

// Role is a named color slot of a Palette.
type Role struct {
	Name string
	Hex  string
}

// Colors lists every role in a fixed order.
func (p Palette) Colors() []Role {
	return []Role{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"background.primary", p.Background.Primary},
		{"background.secondary", p.Background.Secondary},
		{"text.primary", p.Text.Primary},
		{"text.secondary", p.Text.Secondary},
		{"border", p.Border},
	}
}

// Names lists the registered scheme names in display order.
func Names() []string {
	return lo.Map(theme.Schemes(), func(s theme.Scheme, _ int) string { return s.String() })
}

// Light returns the light variant of a scheme. Unknown schemes and a custom
// scheme without a user palette resolve to the default palette.
func Light(scheme theme.Scheme) Palette {
	if p, ok := light[scheme]; ok {
		return p
	}
	return light[theme.SchemeDefault]
}

// Dark returns the dark variant of a scheme, with the same fallback as Light.
func Dark(scheme theme.Scheme) Palette {
	if p, ok := dark[scheme]; ok {
		return p
	}
	return dark[theme.SchemeDefault]
}

// For returns the variant of scheme matching dark.
func For(scheme theme.Scheme, dark bool) Palette {
	if dark {
		return Dark(scheme)
	}
	return Light(scheme)
}

// Resolve returns the palette for a full state, honouring the user palette
// when the custom scheme is selected.
func Resolve(state theme.State, dark bool) Palette {
	if state.Scheme == theme.SchemeCustom {
		if custom, ok := state.Custom.Get(); ok {
			p := FromCustom(custom)
			if dark {
				return Derive(p)
			}
			return p
		}
	}
	return For(state.Scheme, dark)
}

// FromCustom converts a stored user palette into palette tokens.
func FromCustom(c theme.Custom) Palette {
	return Palette{
		Primary:    c.Primary,
		Secondary:  c.Secondary,
		Accent:     c.Accent,
		Background: Pair{c.BackgroundPrimary, c.BackgroundSecondary},
		Text:       Pair{c.TextPrimary, c.TextSecondary},
		Border:     c.Border,
	}
}

// ToCustom is the inverse of FromCustom.
func (p Palette) ToCustom() theme.Custom {
	return theme.Custom{
		Primary:             p.Primary,
		Secondary:           p.Secondary,
		Accent:              p.Accent,
		BackgroundPrimary:   p.Background.Primary,
		BackgroundSecondary: p.Background.Secondary,
		TextPrimary:         p.Text.Primary,
		TextSecondary:       p.Text.Secondary,
		Border:              p.Border,
	}
}

// ValidateHex checks that s is a #rgb or #rrggbb color.
func ValidateHex(s string) error {
	if _, err := colorful.Hex(s); err != nil {
		return fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	return nil
}

// ValidateCustom checks every role of a user palette.
func ValidateCustom(c theme.Custom) error {
	var errs []error
	for _, role := range FromCustom(c).Colors() {
		if err := ValidateHex(role.Hex); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", role.Name, err))
		}
	}
	return errors.Join(errs...)
}
