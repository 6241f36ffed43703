package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for addresses",
	Long: `Performs a one-shot address search and prints the suggestions.
Results marked with [+] are containers; pass their token to
'addrsearch expand' to list the addresses inside.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 6, "maximum number of suggestions")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output suggestions as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if lookupClient == nil {
		return errors.New("lookup client not configured")
	}

	req := driven.LookupRequest{
		Text:       args[0],
		MaxResults: searchLimit,
	}

	locations, err := lookupClient.Find(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputLocationsJSON(cmd, locations)
	}
	return outputLocationsTable(cmd, locations)
}

func outputLocationsJSON(cmd *cobra.Command, locations []domain.Location) error {
	data, err := json.MarshalIndent(locations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal suggestions: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputLocationsTable(cmd *cobra.Command, locations []domain.Location) error {
	if len(locations) == 0 {
		cmd.Println("No suggestions found.")
		return nil
	}

	cmd.Println("Suggestions:")
	cmd.Println()
	for i, loc := range locations {
		marker := "   "
		if loc.Expandable() {
			marker = "[+]"
		}
		cmd.Printf("  [%d] %s %s\n", i+1, marker, loc.Primary.Text)
		if loc.Secondary.Text != "" {
			cmd.Printf("          %s\n", loc.Secondary.Text)
		}
		if loc.Expandable() {
			cmd.Printf("          expand with: addrsearch expand %s\n", loc.Container)
		}
	}
	cmd.Println()

	return nil
}
