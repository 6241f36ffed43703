package driving

import (
	"context"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

// Snapshot is an immutable view of the controller state, exactly what
// a UI layer needs to render: the input value, the ranked suggestions,
// the panel and searching flags, the active banner, and the selection.
type Snapshot struct {
	// Input is the current query text.
	Input string

	// Suggestions is the current result list, in service order.
	Suggestions []domain.Location

	// Searching is true while a debounce cycle or lookup is live.
	Searching bool

	// PanelOpen is true when the suggestion panel should be visible.
	PanelOpen bool

	// Banner is the current status message, or nil.
	Banner *domain.Banner

	// Selection is the selection state machine.
	Selection domain.SelectionState
}

// SuggestController is the debounced, cancelable suggestion search
// state machine.
//
// OnInput, OnFocus, OnDismiss and OnClear return immediately; lookups
// run on the controller's own debounce schedule. OnSelect blocks until
// the selection settles, so UI adapters run it off their event loop.
// State changes are announced on Changes; observers then read
// Snapshot.
type SuggestController interface {
	// OnInput records a keystroke. It resets the selection, clears any
	// banner, and re-arms the debounced search effect, superseding any
	// pending timer or in-flight lookup.
	OnInput(value string)

	// OnSelect resolves a suggestion: container locations are expanded
	// in place, leaf locations are applied to the checkout session.
	OnSelect(ctx context.Context, loc domain.Location)

	// OnFocus reopens the panel if suggestions exist. No fetch.
	OnFocus()

	// OnDismiss closes the panel without touching suggestions.
	OnDismiss()

	// OnClear resets input, suggestions, panel, selection and banner
	// atomically.
	OnClear()

	// Snapshot returns a copy of the observable state.
	Snapshot() Snapshot

	// Changes delivers a coalesced signal after each state change. The
	// channel is closed by Close.
	Changes() <-chan struct{}

	// Close tears the controller down: the pending debounce timer is
	// stopped and any in-flight lookup is aborted.
	Close()
}
