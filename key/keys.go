// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 10

// Storage - these keys select where theme preferences are persisted.
const (
	StorageBackend = "storage.backend"
)

// Host Appearance - these keys govern how the host light/dark preference is detected and followed.
const (
	AppearancePollInterval = "appearance.poll_interval"
	AppearanceDetectors    = "appearance.detectors"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliPreview      = "cli.preview"
	CliVersionCheck = "cli.version_check"
)
