package loader

import "time"

// Config holds runtime settings for the page loader.
type Config struct {
	// NavigationTimeout bounds the whole navigate-and-settle phase.
	NavigationTimeout time.Duration

	// NetworkIdleAfter is how long the network must stay quiet before the
	// page is considered settled.
	NetworkIdleAfter time.Duration

	// Headless controls the browser mode; enabled by default.
	Headless bool
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		NavigationTimeout: 15 * time.Second,
		NetworkIdleAfter:  2 * time.Second,
		Headless:          true,
	}
}
