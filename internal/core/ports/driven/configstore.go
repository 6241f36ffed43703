package driven

import "github.com/parcelworks/addrsearch-cli/internal/core/domain"

// LookupConfig configures the lookup service client.
type LookupConfig struct {
	// Endpoint is the autocomplete endpoint URL.
	Endpoint string `toml:"endpoint"`

	// APIKey authenticates requests, paired with Origin.
	APIKey string `toml:"api_key"`

	// Origin identifies the integration to the service.
	Origin string `toml:"origin"`

	// Countries constrains results to ISO country codes.
	Countries []string `toml:"countries"`
}

// CheckoutConfig configures the checkout session adapter.
type CheckoutConfig struct {
	// SessionEndpoint is the URL the applied address is written to.
	// Empty means the in-memory session (demo mode).
	SessionEndpoint string `toml:"session_endpoint"`
}

// Config is the full application configuration.
type Config struct {
	Lookup   LookupConfig        `toml:"lookup"`
	Search   domain.SearchConfig `toml:"search"`
	Checkout CheckoutConfig      `toml:"checkout"`
}

// ConfigStore loads and persists the application configuration.
// Configuration is read once at startup; the controller's tuning is
// fixed at construction time.
type ConfigStore interface {
	// Load returns the stored configuration merged over defaults.
	Load() (Config, error)

	// Save persists the configuration.
	Save(cfg Config) error

	// SetAPIKey stores the lookup credential without touching the rest
	// of the configuration.
	SetAPIKey(key string) error

	// Path returns the backing file path, for display.
	Path() string
}
