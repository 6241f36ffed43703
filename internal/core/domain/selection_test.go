package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSelectionState_ZeroValue is idle with no key.
func TestSelectionState_ZeroValue(t *testing.T) {
	var s SelectionState

	assert.Equal(t, SelectionIdle, s.Phase())
	assert.Empty(t, s.Key())
}

// TestSelectionState_Transitions covers the three constructors.
func TestSelectionState_Transitions(t *testing.T) {
	idle := Idle()
	assert.Equal(t, SelectionIdle, idle.Phase())
	assert.Empty(t, idle.Key())

	pending := Pending("loc-1")
	assert.Equal(t, SelectionPending, pending.Phase())
	assert.Equal(t, "loc-1", pending.Key())
	assert.True(t, pending.PendingKey("loc-1"))
	assert.False(t, pending.PendingKey("loc-2"))
	assert.False(t, pending.SettledKey("loc-1"))

	settled := Settled("loc-1")
	assert.Equal(t, SelectionSettled, settled.Phase())
	assert.True(t, settled.SettledKey("loc-1"))
	assert.False(t, settled.PendingKey("loc-1"))
}

// TestSelectionPhase_String covers the phase names.
func TestSelectionPhase_String(t *testing.T) {
	assert.Equal(t, "idle", SelectionIdle.String())
	assert.Equal(t, "pending", SelectionPending.String())
	assert.Equal(t, "settled", SelectionSettled.String())
	assert.Equal(t, "unknown", SelectionPhase(99).String())
}
