package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

var (
	expandLimit int
	expandJSON  bool
)

var expandCmd = &cobra.Command{
	Use:   "expand [container-token]",
	Short: "List the addresses inside a container",
	Long: `Expands a container suggestion such as a building or a business
with multiple units. The token comes from a previous search result.`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVarP(&expandLimit, "limit", "n", 100, "maximum number of addresses")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "output addresses as JSON")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	if lookupClient == nil {
		return errors.New("lookup client not configured")
	}

	req := driven.LookupRequest{
		Container:  args[0],
		MaxResults: expandLimit,
	}

	locations, err := lookupClient.Find(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("expand failed: %w", err)
	}

	if expandJSON {
		return outputLocationsJSON(cmd, locations)
	}
	return outputLocationsTable(cmd, locations)
}
