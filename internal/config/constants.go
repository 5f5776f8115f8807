// internal/config/constants.go
package config

// Application info
const (
	AppName    = "french-gapfill-api"
	AppVersion = "1.0.0"
)

// Default configuration values
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultCacheTTLSeconds = 60
)
