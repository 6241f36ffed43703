package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStyles_NilThemeFallsBack uses the default theme.
func TestNewStyles_NilThemeFallsBack(t *testing.T) {
	s := NewStyles(nil)

	require.NotNil(t, s)
	assert.Equal(t, DefaultTheme(), s.Theme())
}

// TestDefaultStyles_Renders produces output for each style.
func TestDefaultStyles_Renders(t *testing.T) {
	s := DefaultStyles()

	assert.Contains(t, s.Title.Render("addrsearch"), "addrsearch")
	assert.Contains(t, s.Highlight.Render("Main"), "Main")
	assert.Contains(t, s.Error.Render("failed"), "failed")
}
