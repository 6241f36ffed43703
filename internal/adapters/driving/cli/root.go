// Package cli implements the addrsearch command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
	"github.com/parcelworks/addrsearch-cli/internal/logger"
)

// Build information, injected from main.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Services injected from main before Execute.
var (
	lookupClient      driven.LookupClient
	checkoutSession   driven.CheckoutSession
	configStore       driven.ConfigStore
	controllerFactory func(demo bool) (driving.SuggestController, error)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "addrsearch",
	Short: "Address lookup for checkout",
	Long: `addrsearch finds delivery addresses as you type.

Search hierarchical address data, drill into buildings with multiple
units, and apply the chosen address to a checkout session. Run
'addrsearch widget' for the interactive experience or 'addrsearch
search' for one-shot lookups.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the build information shown by the version
// command.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// SetLookupClient injects the lookup client used by one-shot commands.
func SetLookupClient(client driven.LookupClient) {
	lookupClient = client
}

// SetCheckoutSession injects the checkout session used by apply.
func SetCheckoutSession(session driven.CheckoutSession) {
	checkoutSession = session
}

// SetConfigStore injects the configuration store used by auth.
func SetConfigStore(store driven.ConfigStore) {
	configStore = store
}

// SetControllerFactory injects the factory the widget command uses to
// build its controller. The demo flag selects the in-memory fixtures.
func SetControllerFactory(f func(demo bool) (driving.SuggestController, error)) {
	controllerFactory = f
}
