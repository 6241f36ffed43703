package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage lookup credentials",
	Long: `Store and inspect the lookup service API key.

The key is kept in the addrsearch config file, readable only by the
current user.

Examples:
  # Set the key interactively (hidden input)
  addrsearch auth set-key

  # Set the key non-interactively
  addrsearch auth set-key YOUR_API_KEY

  # Show whether a key is configured
  addrsearch auth status`,
}

var authSetKeyCmd = &cobra.Command{
	Use:   "set-key [key]",
	Short: "Store the lookup API key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAuthSetKey,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the credential status",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authSetKeyCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthSetKey(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	var key string
	if len(args) == 1 {
		key = strings.TrimSpace(args[0])
	} else {
		cmd.Print("API key: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		cmd.Println()
		if err != nil {
			return fmt.Errorf("failed to read key: %w", err)
		}
		key = strings.TrimSpace(string(raw))
	}

	if key == "" {
		return errors.New("API key is required")
	}

	if err := configStore.SetAPIKey(key); err != nil {
		return fmt.Errorf("failed to store key: %w", err)
	}

	cmd.Printf("API key stored in %s\n", configStore.Path())
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cfg, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cmd.Printf("Config file: %s\n", configStore.Path())
	if cfg.Lookup.APIKey == "" {
		cmd.Println("API key: not set")
		cmd.Println("Set one with: addrsearch auth set-key")
		return nil
	}

	cmd.Printf("API key: %s\n", maskKey(cfg.Lookup.APIKey))
	if cfg.Lookup.Endpoint != "" {
		cmd.Printf("Endpoint: %s\n", cfg.Lookup.Endpoint)
	}
	if len(cfg.Lookup.Countries) > 0 {
		cmd.Printf("Countries: %s\n", strings.Join(cfg.Lookup.Countries, ", "))
	}
	return nil
}

// maskKey keeps just enough of the key to recognise it.
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + strings.Repeat("*", len(key)-4)
}
