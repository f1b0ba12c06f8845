// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Site Resolver Identifiers - these keys manage which resolver scripts are preferred.
const (
	DefaultSources = "sources.default"
)

// Transport - these keys tune the HTTP client content is fetched through.
const (
	NetworkTimeout     = "network.timeout"
	NetworkFingerprint = "network.fingerprint"
	NetworkUserAgent   = "network.user_agent"
)

// Downloads - these keys control how resolved content is written to disk.
const (
	DownloadDirectory = "download.directory"
	DownloadStream    = "download.stream"
	DownloadOverwrite = "download.overwrite"
	DownloadProgress  = "download.progress"
	DownloadHistory   = "download.history"
)

// Player - the application the play commands hand direct uris and saved files to.
const (
	PlayerApp = "player.app"
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

// CLI Execution Environment - these settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
