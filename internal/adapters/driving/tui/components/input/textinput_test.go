package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestQueryInput_ValueRoundTrip sets and reads the value.
func TestQueryInput_ValueRoundTrip(t *testing.T) {
	q := NewQueryInput(nil)
	require.NotNil(t, q)

	q.SetValue("10 Main")
	assert.Equal(t, "10 Main", q.Value())
}

// TestQueryInput_ViewContainsValue renders the typed text.
func TestQueryInput_ViewContainsValue(t *testing.T) {
	q := NewQueryInput(nil)
	q.SetValue("10 Main")

	assert.Contains(t, q.View(), "10 Main")
}

// TestQueryInput_SetWidthClamps keeps a usable minimum width.
func TestQueryInput_SetWidthClamps(t *testing.T) {
	q := NewQueryInput(nil)

	q.SetWidth(10)
	assert.NotPanics(t, func() { _ = q.View() })
}
