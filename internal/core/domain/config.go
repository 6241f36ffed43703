package domain

import "time"

// Default search tuning values.
const (
	// DefaultMinQueryLength is the shortest trimmed query that triggers
	// a lookup.
	DefaultMinQueryLength = 3

	// DefaultDebounceMs is the quiescence interval before a lookup is
	// issued.
	DefaultDebounceMs = 250

	// DefaultMaxResults caps primary search results.
	DefaultMaxResults = 6

	// DefaultContainerMaxResults caps container expansion results.
	DefaultContainerMaxResults = 100
)

// SearchConfig tunes the suggestion controller. It is fixed at
// construction time; there is no process-wide mutable search state.
type SearchConfig struct {
	// MinQueryLength is the minimum trimmed query length (in runes)
	// before any lookup is issued.
	MinQueryLength int `toml:"min_query_length"`

	// DebounceMs is how long input must be quiescent before the lookup
	// fires, in milliseconds.
	DebounceMs int `toml:"debounce_ms"`

	// MaxResults caps primary search results. The service applies the
	// cap; the controller never re-truncates.
	MaxResults int `toml:"max_results"`

	// ContainerMaxResults caps results when expanding a container.
	ContainerMaxResults int `toml:"container_max_results"`
}

// DefaultSearchConfig returns the standard tuning.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		MinQueryLength:      DefaultMinQueryLength,
		DebounceMs:          DefaultDebounceMs,
		MaxResults:          DefaultMaxResults,
		ContainerMaxResults: DefaultContainerMaxResults,
	}
}

// Normalised returns a copy with zero or negative fields replaced by
// their defaults.
func (c SearchConfig) Normalised() SearchConfig {
	def := DefaultSearchConfig()
	if c.MinQueryLength <= 0 {
		c.MinQueryLength = def.MinQueryLength
	}
	if c.DebounceMs <= 0 {
		c.DebounceMs = def.DebounceMs
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.ContainerMaxResults <= 0 {
		c.ContainerMaxResults = def.ContainerMaxResults
	}
	return c
}

// Debounce returns the debounce interval as a duration.
func (c SearchConfig) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}
