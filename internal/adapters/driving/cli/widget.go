package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui"
)

var widgetDemo bool

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Launch the interactive address widget",
	Long: `Launch the interactive terminal widget.

Type to search for addresses; suggestions appear as you pause.
Containers such as buildings with multiple flats expand in place.
Selecting an address applies it to the checkout session.

Controls:
  ↑/↓      Navigate suggestions
  Enter    Select
  Esc      Dismiss panel
  Ctrl+U   Clear
  Ctrl+C   Quit`,
	RunE: runWidget,
}

func init() {
	widgetCmd.Flags().BoolVar(&widgetDemo, "demo", false, "use built-in demo data, no credentials needed")
	rootCmd.AddCommand(widgetCmd)
}

func runWidget(cmd *cobra.Command, _ []string) error {
	if controllerFactory == nil {
		return errors.New("controller factory not configured")
	}

	// Surface panics with a stack instead of a corrupted terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in widget: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	controller, err := controllerFactory(widgetDemo)
	if err != nil {
		return fmt.Errorf("failed to create controller: %w", err)
	}
	defer controller.Close()

	app := tui.NewApp(controller).WithContext(cmd.Context())
	if err := app.Run(); err != nil {
		return fmt.Errorf("widget error: %w", err)
	}
	return nil
}
