package provider

import (
	"github.com/samber/mo"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/theme"
)

// Snapshot is an immutable view of the theme handed to consumers.
// Every change produces a snapshot with a higher Version.
type Snapshot struct {
	Version uint64

	Mode   theme.Mode
	Scheme theme.Scheme
	Design theme.Design
	Custom mo.Option[theme.Custom]

	IsDark bool
	Colors palette.Palette
}

func newSnapshot(version uint64, state theme.State, hostDark bool) Snapshot {
	dark := state.IsDark(hostDark)

	return Snapshot{
		Version: version,
		Mode:    state.Mode,
		Scheme:  state.Scheme,
		Design:  state.Design,
		Custom:  state.Custom,
		IsDark:  dark,
		Colors:  palette.Resolve(state, dark),
	}
}

// State returns the preferences the snapshot was derived from.
func (s Snapshot) State() theme.State {
	return theme.State{
		Mode:   s.Mode,
		Scheme: s.Scheme,
		Design: s.Design,
		Custom: s.Custom,
	}
}
