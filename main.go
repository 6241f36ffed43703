// addrsearch is a terminal address autocomplete for checkout flows.
package main

import (
	"fmt"
	"os"

	checkoutmem "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/checkout/memory"
	checkoutrest "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/checkout/rest"
	configfile "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/config/file"
	lookupmem "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/lookup/memory"
	lookuprest "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/lookup/rest"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/cli"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
	"github.com/parcelworks/addrsearch-cli/internal/core/services"
	"github.com/parcelworks/addrsearch-cli/internal/logger"
)

// Build information, set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	store, err := configfile.NewConfigStore(os.Getenv("ADDRSEARCH_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("failed to open config store: %w", err)
	}

	cfg, err := store.Load()
	if err != nil {
		// Defaults are usable; the broken file is only worth a warning.
		logger.Warn("config load failed, using defaults (%s): %v", store.Path(), err)
	}

	// Environment overrides for credentials, so CI and one-off runs
	// don't need a config file.
	if key := os.Getenv("ADDRSEARCH_API_KEY"); key != "" {
		cfg.Lookup.APIKey = key
	}

	lookup := lookuprest.NewClient(lookuprest.Config{
		Endpoint:   cfg.Lookup.Endpoint,
		APIKey:     cfg.Lookup.APIKey,
		Origin:     cfg.Lookup.Origin,
		Countries:  cfg.Lookup.Countries,
		MaxResults: cfg.Search.MaxResults,
	})
	session := checkoutrest.NewSession(cfg.Checkout.SessionEndpoint)

	cli.SetVersionInfo(version, commit, date)
	cli.SetConfigStore(store)
	cli.SetLookupClient(lookup)
	cli.SetCheckoutSession(session)
	cli.SetControllerFactory(func(demo bool) (driving.SuggestController, error) {
		if demo || cfg.Lookup.APIKey == "" {
			if !demo {
				logger.Info("no API key configured, using demo data")
			}
			fixtures := lookupmem.NewLookup()
			fixtures.SeedDemo()
			return services.NewSuggestService(cfg.Search, fixtures, checkoutmem.NewSession()), nil
		}

		var checkout driven.CheckoutSession = session
		if cfg.Checkout.SessionEndpoint == "" {
			checkout = checkoutmem.NewSession()
		}
		return services.NewSuggestService(cfg.Search, lookup, checkout), nil
	})

	return cli.Execute()
}
