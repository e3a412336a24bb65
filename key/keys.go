// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 12

// Playback Engine - these keys select and parameterize the external audio engine.
const (
	PlayerEngine     = "player.engine"
	PlayerEngineArgs = "player.engine_args"
)

// History Tracking - these keys configure the persistence of playback history.
const (
	HistorySaveOnPlay = "history.save_on_play"
	HistorySize       = "history.size"
)

// Iconography - these keys manage the visual rendering of CLI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	CliShowElapsed  = "cli.show_elapsed"
	CliClearScreen  = "cli.clear_screen"
)
