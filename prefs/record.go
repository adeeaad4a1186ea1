package prefs

import (
	"encoding/json"
	"fmt"

	"github.com/themer-cli/themer/log"
	"github.com/themer-cli/themer/theme"
)

// SchemaVersion is the version written by Save.
const SchemaVersion = 1

const fieldCustom = "customPalette"

// Record is the persisted shape of theme.State.
type Record struct {
	SchemaVersion int           `json:"schemaVersion" jsonschema:"description=Version of this record layout.,minimum=0"`
	Mode          string        `json:"mode" jsonschema:"description=Light/dark intent.,enum=light,enum=dark,enum=auto"`
	ColorScheme   string        `json:"colorScheme" jsonschema:"description=Named palette.,enum=default,enum=blue,enum=purple,enum=green,enum=orange,enum=custom"`
	UIDesign      string        `json:"uiDesign" jsonschema:"description=Cosmetic layout style.,enum=modern,enum=minimal,enum=glassmorphism,enum=neumorphism,enum=gradient"`
	CustomPalette *theme.Custom `json:"customPalette,omitempty" jsonschema:"description=User palette used by the custom scheme. Hex colors for the light variant."`
}

// NewRecord captures a state at the current schema version.
func NewRecord(state theme.State) Record {
	r := Record{
		SchemaVersion: SchemaVersion,
		Mode:          state.Mode.String(),
		ColorScheme:   state.Scheme.String(),
		UIDesign:      state.Design.String(),
	}

	if custom, ok := state.Custom.Get(); ok {
		r.CustomPalette = &custom
	}

	return r
}

// migration upgrades a raw record from version n to n+1.
type migration func(raw map[string]json.RawMessage) error

// migrations is indexed by the version a step upgrades from.
var migrations = []migration{
	// 0 -> 1: records written before versioning used short field names.
	func(raw map[string]json.RawMessage) error {
		renames := map[string]string{
			"theme":  theme.FieldMode,
			"scheme": theme.FieldScheme,
			"design": theme.FieldDesign,
		}
		for legacy, current := range renames {
			value, ok := raw[legacy]
			if !ok {
				continue
			}
			if _, exists := raw[current]; !exists {
				raw[current] = value
			}
			delete(raw, legacy)
		}
		return nil
	},
}

// decode parses a stored record, running migrations for older versions.
// Records from newer versions are read as-is.
func decode(data string) (Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return Record{}, err
	}
	if raw == nil {
		return Record{}, fmt.Errorf("record is null")
	}

	var version int
	if v, ok := raw["schemaVersion"]; ok {
		if err := json.Unmarshal(v, &version); err != nil {
			return Record{}, fmt.Errorf("schemaVersion: %w", err)
		}
	}

	for ; version < len(migrations) && version >= 0; version++ {
		if err := migrations[version](raw); err != nil {
			return Record{}, fmt.Errorf("migrate from version %d: %w", version, err)
		}
	}

	r := Record{SchemaVersion: version}
	field(raw, theme.FieldMode, &r.Mode)
	field(raw, theme.FieldScheme, &r.ColorScheme)
	field(raw, theme.FieldDesign, &r.UIDesign)
	field(raw, fieldCustom, &r.CustomPalette)

	return r, nil
}

// field decodes raw[name] into dst. A value of the wrong shape is logged
// and leaves dst untouched so that only this field falls back.
func field[T any](raw map[string]json.RawMessage, name string, dst *T) {
	value, ok := raw[name]
	if !ok {
		return
	}

	var decoded T
	if err := json.Unmarshal(value, &decoded); err != nil {
		log.WithError(err).WithField("field", name).Warn("ignoring malformed persisted field")
		return
	}
	*dst = decoded
}
