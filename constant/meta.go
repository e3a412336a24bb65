// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Tonearm is the canonical application identifier used for filesystem paths and CLI branding.
	Tonearm = "tonearm"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent identifies the application on outgoing HTTP requests (update checks).
	UserAgent = Tonearm + "/" + Version
)

// Build metadata, injected at release time via -ldflags.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
