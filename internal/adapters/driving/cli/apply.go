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
	applyIndex  int
	applyLimit  int
	applyJSON   bool
	applyDryRun bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [query]",
	Short: "Search and apply an address to the checkout session",
	Long: `Searches for the query, derives checkout fields from the chosen
suggestion, and applies it as the shipping address.

Container suggestions cannot be applied directly; expand them first
and apply one of the addresses inside.`,
	Args: cobra.ExactArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().IntVarP(&applyIndex, "index", "i", 1, "1-based suggestion to apply")
	applyCmd.Flags().IntVarP(&applyLimit, "limit", "n", 6, "maximum number of suggestions to search")
	applyCmd.Flags().BoolVar(&applyJSON, "json", false, "output the derived address as JSON")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "derive the address without applying it")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command, args []string) error {
	if lookupClient == nil {
		return errors.New("lookup client not configured")
	}
	if checkoutSession == nil && !applyDryRun {
		return errors.New("checkout session not configured")
	}

	locations, err := lookupClient.Find(cmd.Context(), driven.LookupRequest{
		Text:       args[0],
		MaxResults: applyLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(locations) == 0 {
		return errors.New("no suggestions found")
	}
	if applyIndex < 1 || applyIndex > len(locations) {
		return fmt.Errorf("index %d out of range, %d suggestions found", applyIndex, len(locations))
	}

	loc := locations[applyIndex-1]
	if loc.Expandable() {
		return fmt.Errorf("suggestion %d is a container, expand it with: addrsearch expand %s",
			applyIndex, loc.Container)
	}

	addr := domain.DeriveAddress(loc)

	if !applyDryRun {
		if err := checkoutSession.ApplyShippingAddress(cmd.Context(), addr); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("address rejected: %w", verr)
			}
			return fmt.Errorf("apply failed: %w", err)
		}
	}

	if applyJSON {
		data, err := json.MarshalIndent(addr, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal address: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if applyDryRun {
		cmd.Println("Derived address (not applied):")
	} else {
		cmd.Println("Shipping address updated:")
	}
	printAddress(cmd, addr)
	return nil
}

func printAddress(cmd *cobra.Command, addr domain.Address) {
	cmd.Printf("  Address 1: %s\n", addr.Address1)
	if addr.Address2 != "" {
		cmd.Printf("  Address 2: %s\n", addr.Address2)
	}
	if addr.Company != "" {
		cmd.Printf("  Company:   %s\n", addr.Company)
	}
	cmd.Printf("  City:      %s\n", addr.City)
	cmd.Printf("  Zip:       %s\n", addr.Zip)
	cmd.Printf("  Country:   %s\n", addr.CountryCode)
}
