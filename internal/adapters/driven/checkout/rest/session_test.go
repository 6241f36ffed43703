package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

var testAddr = domain.Address{
	Address1:    "10 Main Street",
	Address2:    "Flat 2",
	City:        "Springfield",
	Zip:         "SP1 2AB",
	CountryCode: "GB",
}

// TestSession_ApplySuccess sends the address as JSON.
func TestSession_ApplySuccess(t *testing.T) {
	var got domain.Address
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := NewSession(srv.URL).ApplyShippingAddress(context.Background(), testAddr)
	require.NoError(t, err)
	assert.Equal(t, testAddr, got)
}

// TestSession_ValidationErrors decodes field-level rejections.
func TestSession_ValidationErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errors": {"zip": "is invalid"}}`))
	}))
	defer srv.Close()

	err := NewSession(srv.URL).ApplyShippingAddress(context.Background(), testAddr)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, map[string]string{"zip": "is invalid"}, verr.Fields)
}

// TestSession_ServerError is an infrastructure failure, not a
// validation error.
func TestSession_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewSession(srv.URL).ApplyShippingAddress(context.Background(), testAddr)

	require.Error(t, err)
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
}
