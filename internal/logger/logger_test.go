package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLogger_VerboseGating only emits debug output in verbose mode.
func TestLogger_VerboseGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(false)
	Debug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, IsVerbose())
	Debug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}

// TestLogger_WarnAlwaysEmitted does not require verbose mode.
func TestLogger_WarnAlwaysEmitted(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(false)
	Warn("lookup failed: %v", "boom")
	assert.Contains(t, buf.String(), "lookup failed: boom")
}

// TestLogger_Section appears only in verbose mode.
func TestLogger_Section(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})

	SetVerbose(true)
	Section("Search Execution")
	assert.Contains(t, buf.String(), "=== Search Execution ===")
}
