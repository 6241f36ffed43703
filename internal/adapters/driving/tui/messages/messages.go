// Package messages defines Bubbletea message types for the widget.
// Messages represent events that flow through the Elm architecture.
package messages

import (
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
)

// StateChanged carries a fresh controller snapshot into the model. It
// is emitted whenever the controller signals a change.
type StateChanged struct {
	Snapshot driving.Snapshot
}

// ControllerClosed signals that the controller's change stream ended.
type ControllerClosed struct{}

// SelectionDispatched signals that a selection was handed to the
// controller. The outcome arrives later as a StateChanged.
type SelectionDispatched struct {
	Key string
}
