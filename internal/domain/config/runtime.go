package config

import (
	"time"
)

// RuntimeConfig holds the settings of the chainconf process itself.
// The toolchain Config it loads is separate and lives in Config.
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFiles    []string // relative to ProjectRoot unless absolute

	// Context settings
	Network string // empty means all networks

	// Execution settings
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration
}
