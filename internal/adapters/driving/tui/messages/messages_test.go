package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
)

func TestStateChanged_CarriesSnapshot(t *testing.T) {
	snap := driving.Snapshot{
		Input:     "main",
		PanelOpen: true,
		Suggestions: []domain.Location{
			{Key: "a", Primary: domain.Highlightable{Text: "10 Main Street"}},
		},
	}

	msg := StateChanged{Snapshot: snap}

	assert.Equal(t, "main", msg.Snapshot.Input)
	assert.Len(t, msg.Snapshot.Suggestions, 1)
}

func TestSelectionDispatched_CarriesKey(t *testing.T) {
	msg := SelectionDispatched{Key: "a"}

	assert.Equal(t, "a", msg.Key)
}
