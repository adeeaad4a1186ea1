// Package prefs persists theme.State as a versioned JSON record in a storage slot.
//
// Loading never fails hard. A missing or unreadable record yields None and
// the caller keeps defaults; a record with some bad fields keeps the good ones.
package prefs

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/mo"
	"github.com/themer-cli/themer/constant"
	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/palette"
	"github.com/themer-cli/themer/storage"
	"github.com/themer-cli/themer/theme"
)

// Load reads the saved state. Errors are logged and reported as None.
func Load(slot storage.Slot) mo.Option[theme.State] {
	state, err := LoadErr(slot)
	if err != nil {
		log.WithError(err).WithField("backend", slot.Name()).Warn("falling back to default theme")
		return mo.None[theme.State]()
	}
	return state
}

// LoadErr is Load for callers that want to see a *ReadError.
// A slot without a record is None with a nil error.
func LoadErr(slot storage.Slot) (mo.Option[theme.State], error) {
	data, err := slot.Get(constant.StorageKey)
	if err != nil {
		return mo.None[theme.State](), &ReadError{Backend: slot.Name(), Err: err}
	}

	raw, ok := data.Get()
	if !ok {
		return mo.None[theme.State](), nil
	}

	record, err := decode(raw)
	if err != nil {
		return mo.None[theme.State](), &ReadError{Backend: slot.Name(), Err: err}
	}

	return mo.Some(record.State()), nil
}

// State converts a record, replacing each invalid field with its default.
func (r Record) State() theme.State {
	state := theme.Default()

	fields := log.Fields{"schemaVersion": r.SchemaVersion}

	if r.Mode != "" {
		if mode, err := theme.ParseMode(r.Mode); err == nil {
			state.Mode = mode
		} else {
			log.WithError(err).WithFields(fields).Warn("ignoring persisted mode")
		}
	}

	if r.ColorScheme != "" {
		if scheme, err := theme.ParseScheme(r.ColorScheme); err == nil {
			state.Scheme = scheme
		} else {
			log.WithError(err).WithFields(fields).Warn("ignoring persisted color scheme")
		}
	}

	if r.UIDesign != "" {
		if design, err := theme.ParseDesign(r.UIDesign); err == nil {
			state.Design = design
		} else {
			log.WithError(err).WithFields(fields).Warn("ignoring persisted ui design")
		}
	}

	if r.CustomPalette != nil {
		if err := palette.ValidateCustom(*r.CustomPalette); err == nil {
			state.Custom = mo.Some(*r.CustomPalette)
		} else {
			log.WithError(err).WithFields(fields).Warn("ignoring persisted custom palette")
		}
	}

	return state
}

// Save writes state and logs failures. Preference loss is not fatal.
func Save(slot storage.Slot, state theme.State) {
	if err := SaveErr(slot, state); err != nil {
		log.WithError(err).WithField("backend", slot.Name()).Error("theme preferences not saved")
	}
}

// SaveErr writes state and returns a *WriteError on failure.
func SaveErr(slot storage.Slot, state theme.State) error {
	data, err := json.Marshal(NewRecord(state))
	if err != nil {
		return &WriteError{Backend: slot.Name(), Err: err}
	}

	if err := slot.Set(constant.StorageKey, string(data)); err != nil {
		return &WriteError{Backend: slot.Name(), Err: err}
	}

	log.WithFields(log.Fields{
		"backend": slot.Name(),
		"mode":    state.Mode,
		"scheme":  state.Scheme,
		"design":  state.Design,
	}).Debug("theme preferences saved")

	return nil
}

// Clear removes the saved record so the next Load yields None.
func Clear(slot storage.Slot) error {
	if err := slot.Delete(constant.StorageKey); err != nil {
		return &WriteError{Backend: slot.Name(), Err: err}
	}
	return nil
}

// Schema returns the JSON Schema of the persisted record.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		if t == reflect.TypeOf(theme.Custom{}) {
			return "CustomPalette"
		}
		return t.Name()
	}

	return reflector.Reflect(&Record{})
}
