// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Themer is the canonical application identifier used for filesystem paths and CLI branding.
	Themer = "themer"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// StorageKey is the namespaced slot key holding the persisted theme record.
	StorageKey = Themer + ":theme"

	// KeyringService is the service name used when preferences live in the system keyring.
	KeyringService = Themer + "-preferences"
)

// Build metadata, overridden at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
