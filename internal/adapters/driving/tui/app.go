// Package tui implements the interactive address widget on Bubbletea.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/components/input"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/components/list"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/components/status"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/keymap"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/messages"
	"github.com/parcelworks/addrsearch-cli/internal/adapters/driving/tui/styles"
	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
)

// App is the address widget following the Elm architecture. It renders
// whatever the controller's latest snapshot says; all search and
// selection behaviour lives behind the driving port.
type App struct {
	// controller is the suggestion search state machine.
	controller driving.SuggestController

	// ctx is passed to blocking selection calls.
	ctx context.Context

	// styles holds the widget styles.
	styles *styles.Styles

	// keymap holds the widget keybindings.
	keymap *keymap.KeyMap

	// queryInput is the query text field.
	queryInput *input.QueryInput

	// suggestionList is the suggestion panel.
	suggestionList *list.SuggestionList

	// statusBar is the bottom bar.
	statusBar *status.Bar

	// snapshot is the last state observed from the controller.
	snapshot driving.Snapshot

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the first WindowSizeMsg arrived.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the widget around a controller.
func NewApp(controller driving.SuggestController) *App {
	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		controller:     controller,
		ctx:            context.Background(),
		styles:         s,
		keymap:         km,
		queryInput:     input.NewQueryInput(s),
		suggestionList: list.NewSuggestionList(s),
		statusBar:      status.NewBar(s, km),
	}
}

// WithContext sets the context used for selection dispatch.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("addrsearch - Delivery Address"),
		a.queryInput.Init(),
		a.waitForState(),
	)
}

// waitForState blocks on the controller's change stream and turns each
// signal into a StateChanged message. It re-arms itself from Update.
func (a *App) waitForState() tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-a.controller.Changes(); !ok {
			return messages.ControllerClosed{}
		}
		return messages.StateChanged{Snapshot: a.controller.Snapshot()}
	}
}

// dispatchSelection hands the focused location to the controller.
// OnSelect blocks until the selection settles, so it runs as a command
// off the event loop; the outcome arrives as a StateChanged.
func (a *App) dispatchSelection(loc domain.Location) tea.Cmd {
	return func() tea.Msg {
		a.controller.OnSelect(a.ctx, loc)
		return messages.SelectionDispatched{Key: loc.Key}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.queryInput.SetWidth(msg.Width)
		a.suggestionList.SetWidth(msg.Width)
		a.statusBar.SetWidth(msg.Width)
		return a, nil

	case messages.StateChanged:
		a.applySnapshot(msg.Snapshot)
		return a, a.waitForState()

	case messages.ControllerClosed:
		return a, tea.Quit

	case messages.SelectionDispatched:
		// Outcome arrives via the change stream.
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	return a, cmd
}

// handleKey routes a key press. Navigation keys drive the panel; all
// other keys flow into the text input and then to the controller.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := a.keymap

	switch {
	case key.Matches(msg, km.Quit):
		a.controller.Close()
		return a, tea.Quit

	case key.Matches(msg, km.Clear):
		a.queryInput.SetValue("")
		a.controller.OnClear()
		return a, nil

	case key.Matches(msg, km.Dismiss):
		a.controller.OnDismiss()
		return a, nil

	case key.Matches(msg, km.Up):
		if a.snapshot.PanelOpen {
			a.suggestionList.MoveUp()
		} else {
			a.controller.OnFocus()
		}
		return a, nil

	case key.Matches(msg, km.Down):
		if a.snapshot.PanelOpen {
			a.suggestionList.MoveDown()
		} else {
			a.controller.OnFocus()
		}
		return a, nil

	case key.Matches(msg, km.Select):
		if !a.snapshot.PanelOpen {
			return a, nil
		}
		loc := a.suggestionList.Current()
		if loc == nil {
			return a, nil
		}
		return a, a.dispatchSelection(*loc)
	}

	before := a.queryInput.Value()
	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	if after := a.queryInput.Value(); after != before {
		a.controller.OnInput(after)
	}
	return a, cmd
}

// applySnapshot pushes controller state into the components. The text
// input is only overwritten when the controller's value diverges, so
// the cursor position survives ordinary typing.
func (a *App) applySnapshot(snap driving.Snapshot) {
	a.snapshot = snap

	if a.queryInput.Value() != snap.Input && snap.Input == "" {
		a.queryInput.SetValue("")
	}

	a.suggestionList.SetSuggestions(snap.Suggestions, snap.Input)
	a.suggestionList.SetSelection(snap.Selection)

	a.statusBar.SetSearching(snap.Searching)
	a.statusBar.SetPanelOpen(snap.PanelOpen)
	a.statusBar.SetBanner(snap.Banner)
	a.statusBar.SetResultCount(len(snap.Suggestions))
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	sections := []string{a.queryInput.View()}
	if a.snapshot.PanelOpen {
		sections = append(sections, a.suggestionList.View())
	}
	sections = append(sections, a.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Run starts the widget.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Snapshot returns the last applied controller snapshot.
func (a *App) Snapshot() driving.Snapshot {
	return a.snapshot
}

// Ready returns whether the widget received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}
