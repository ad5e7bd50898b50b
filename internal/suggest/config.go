package suggest

import "time"

// Config holds runtime settings for the suggestion gateway. AI usage is an
// explicit construction-time value, never an ambient flag consulted ad hoc.
type Config struct {
	// AIEnabled turns the upstream AI provider on. When false (or when the
	// provider fails) every suggestion comes from the static fallback table.
	AIEnabled bool

	// APIKey authenticates against the upstream provider.
	APIKey string

	// Model is the upstream model identifier.
	Model string

	// BaseURL is the provider endpoint root.
	BaseURL string

	// Timeout bounds a single upstream call.
	Timeout time.Duration

	// MinInterval is the minimum spacing between upstream calls in a batch,
	// to respect provider rate limits.
	MinInterval time.Duration

	// CachePath is the sqlite file caching AI-generated suggestion text by
	// rule id. Empty disables the cache.
	CachePath string
}

// DefaultConfig returns a Config populated with sensible defaults. AI stays
// off until a key is configured.
func DefaultConfig() Config {
	return Config{
		AIEnabled:   false,
		Model:       "gpt-4o-mini",
		BaseURL:     "https://api.openai.com",
		Timeout:     10 * time.Second,
		MinInterval: 500 * time.Millisecond,
	}
}
