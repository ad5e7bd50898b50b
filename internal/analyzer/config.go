package analyzer

import "github.com/raysh454/aria/internal/loader"

// Config holds runtime settings for the analyzer.
type Config struct {
	// Loader configures the page loader constructed when none is injected.
	Loader loader.Config
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Loader: loader.DefaultConfig(),
	}
}
