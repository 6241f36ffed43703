package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

func testClient(endpoint string) *Client {
	return NewClient(Config{
		Endpoint:   endpoint,
		APIKey:     "test-key",
		Origin:     "test-origin",
		Countries:  []string{"GB", "IE"},
		MaxResults: 6,
	})
}

const sampleResponse = `{
	"results": [
		{
			"id": "loc-1",
			"type": "subbuilding",
			"primary": {"text": "Flat 2, 10 Main Street", "highlights": [0, 5]},
			"secondary": {"text": "Springfield, SP1 2AB"},
			"countryCode": "GB"
		},
		{
			"id": "grp-1",
			"type": "container",
			"primary": {"text": "Main Street Apartments"},
			"secondary": {"text": "Springfield"},
			"isContainer": true,
			"container": "tok-abc",
			"countryCode": "GB"
		}
	]
}`

// TestClient_FindByText sends the fixed parameter set plus the query
// text and decodes the ranked results in order.
func TestClient_FindByText(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	locs, err := testClient(srv.URL).Find(context.Background(), driven.LookupRequest{Text: "10 Main"})
	require.NoError(t, err)

	require.Len(t, locs, 2)
	assert.Equal(t, "loc-1", locs[0].Key)
	assert.Equal(t, "Flat 2, 10 Main Street", locs[0].Primary.Text)
	assert.Equal(t, []int{0, 5}, locs[0].Primary.Highlights)
	assert.Equal(t, domain.LocationTypeSubBuilding, locs[0].Type)
	assert.False(t, locs[0].IsContainer)
	assert.True(t, locs[1].Expandable())
	assert.Equal(t, "tok-abc", locs[1].Container)

	assert.Equal(t, []string{"test-key"}, gotQuery["key"])
	assert.Equal(t, []string{"test-origin"}, gotQuery["origin"])
	assert.Equal(t, []string{"GB,IE"}, gotQuery["countries"])
	assert.Equal(t, []string{"ADDRESS,W3W"}, gotQuery["searchFor"])
	assert.Equal(t, []string{"6"}, gotQuery["maxResults"])
	assert.Equal(t, []string{"10 Main"}, gotQuery["text"])
	assert.NotContains(t, gotQuery, "container")
}

// TestClient_FindByContainer substitutes the container token for the
// text parameter and honours the per-call cap override.
func TestClient_FindByContainer(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	locs, err := testClient(srv.URL).Find(context.Background(), driven.LookupRequest{
		Container:  "tok-abc",
		MaxResults: 100,
	})
	require.NoError(t, err)
	assert.Empty(t, locs)

	assert.Equal(t, []string{"tok-abc"}, gotQuery["container"])
	assert.Equal(t, []string{"100"}, gotQuery["maxResults"])
	assert.NotContains(t, gotQuery, "text")
}

// TestClient_MissingID generates a stable key for results without one.
func TestClient_MissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"primary": {"text": "10 Main Street"}}]}`))
	}))
	defer srv.Close()

	locs, err := testClient(srv.URL).Find(context.Background(), driven.LookupRequest{Text: "10 Main"})
	require.NoError(t, err)
	require.Len(t, locs, 1)
	assert.NotEmpty(t, locs[0].Key)
}

// TestClient_InvalidRequest rejects text-and-container combinations
// before any network call.
func TestClient_InvalidRequest(t *testing.T) {
	c := testClient("http://localhost:0")

	tests := []struct {
		name string
		req  driven.LookupRequest
	}{
		{"both set", driven.LookupRequest{Text: "x", Container: "y"}},
		{"neither set", driven.LookupRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Find(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

// TestClient_MissingCredentials fails fast without credentials.
func TestClient_MissingCredentials(t *testing.T) {
	c := NewClient(Config{Endpoint: "http://localhost:0"})

	_, err := c.Find(context.Background(), driven.LookupRequest{Text: "10 Main"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

// TestClient_ErrorStatus maps non-200 responses to ErrLookupFailed.
func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Find(context.Background(), driven.LookupRequest{Text: "10 Main"})
	assert.ErrorIs(t, err, domain.ErrLookupFailed)
}

// TestClient_Cancellation surfaces context.Canceled so the controller
// can treat the abort as silent.
func TestClient_Cancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	_, err := testClient(srv.URL).Find(ctx, driven.LookupRequest{Text: "10 Main"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
