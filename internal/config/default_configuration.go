package config

import "github.com/rs/zerolog"

// DefaultAPIURL points to the publicly hosted rules management service.
const DefaultAPIURL = "https://firebaserules.googleapis.com"

// nolint: gochecknoglobals
var defaultConfig = Configuration{
	API: map[string]any{"url": DefaultAPIURL},
	Log: LoggingConfig{Format: LogTextFormat, Level: zerolog.InfoLevel},
}
