// Package storage provides durable string key-value slots for preference records.
package storage

import (
	"strings"

	"github.com/samber/mo"
	"github.com/themer-cli/themer/theme"
)

// Backend names accepted by Open.
const (
	BackendLocal   = "local"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// Slot is a string key-value store. Implementations must be safe for concurrent use.
type Slot interface {
	// Name identifies the backend in logs and CLI output.
	Name() string
	// Get returns None when the key has never been written.
	Get(key string) (mo.Option[string], error)
	Set(key, value string) error
	// Delete succeeds when the key is already absent.
	Delete(key string) error
}

// Backends lists the names accepted by Open.
func Backends() []string {
	return []string{BackendLocal, BackendKeyring, BackendMemory}
}

// Open builds the slot for a backend name.
func Open(backend string) (Slot, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendLocal:
		return NewLocal(), nil
	case BackendKeyring:
		return NewKeyring(), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, &theme.UnknownValueError{
			Field: "storage backend",
			Value: backend,
			Known: Backends(),
		}
	}
}
