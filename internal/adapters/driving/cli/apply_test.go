package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkoutmem "github.com/parcelworks/addrsearch-cli/internal/adapters/driven/checkout/memory"
	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

func TestApplyCmd_Use(t *testing.T) {
	assert.Equal(t, "apply [query]", applyCmd.Use)
}

func TestApplyCmd_AppliesFirstSuggestion(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session := checkoutmem.NewSession()
	checkoutSession = session

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"apply", "10 Main"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Shipping address updated:")

	addr, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "10 Main Street", addr.Address1)
	assert.Equal(t, "Springfield", addr.City)
	assert.Equal(t, "SP1 2AB", addr.Zip)
}

// TestApplyCmd_BusinessAddress routes the name before the comma into
// the company field.
func TestApplyCmd_BusinessAddress(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session := checkoutmem.NewSession()
	checkoutSession = session

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"apply", "Acme"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)

	addr, ok := session.Current()
	require.True(t, ok)
	assert.Equal(t, "Acme Ltd", addr.Company)
	assert.Equal(t, "12 Main Street", addr.Address1)
}

func TestApplyCmd_DryRun(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session := checkoutmem.NewSession()
	checkoutSession = session

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"apply", "--dry-run", "10 Main"})
	defer func() {
		rootCmd.SetArgs(nil)
		applyDryRun = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "not applied")
	assert.Empty(t, session.Applied())
}

func TestApplyCmd_RejectsContainer(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "apartments"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "container")
	assert.Contains(t, err.Error(), "demo-grp")
}

func TestApplyCmd_IndexOutOfRange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "--index", "9", "main"})
	defer func() {
		rootCmd.SetArgs(nil)
		applyIndex = 1
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestApplyCmd_NoSuggestions(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "zzzz"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no suggestions found")
}

// TestApplyCmd_ValidationRejection surfaces field errors from the
// checkout session.
func TestApplyCmd_ValidationRejection(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	session := checkoutmem.NewSession()
	session.FailWith(&domain.ValidationError{Fields: map[string]string{"zip": "is invalid"}})
	checkoutSession = session

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "10 Main"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "address rejected")
	assert.Contains(t, err.Error(), "zip")
}

func TestApplyCmd_SessionNotConfigured(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	checkoutSession = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"apply", "10 Main"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "checkout session not configured")
}
