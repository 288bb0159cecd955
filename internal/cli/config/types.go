// Package config provides configuration management for the baldguard CLI.
package config

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	MaxDepth     int    `koanf:"max_depth"`
	Verbose      bool   `koanf:"verbose"`
	HistoryFile  string `koanf:"history_file"`
	Color        string `koanf:"color"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=json
	DefaultMaxDepth    = 256
	DefaultColor       = "auto"
	DefaultHistoryFile = ".baldguard_history"
	EnvPrefix          = "BALDGUARD_"
)

// OutputFormats lists the accepted values of the output key.
var OutputFormats = []string{"auto", "text", "json", "yaml"}

// ColorModes lists the accepted values of the color key.
var ColorModes = []string{"auto", "always", "never"}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		MaxDepth:     DefaultMaxDepth,
		HistoryFile:  DefaultHistoryFile,
		Color:        DefaultColor,
	}
}
