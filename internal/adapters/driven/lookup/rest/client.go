// Package rest implements driven.LookupClient against the hosted
// address lookup HTTP API.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
	"github.com/parcelworks/addrsearch-cli/internal/logger"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// searchFor lists the input kinds the service should accept:
	// free-text addresses and three-word geocodes.
	searchFor = "ADDRESS,W3W"
)

// Ensure Client implements the driven port.
var _ driven.LookupClient = (*Client)(nil)

// Config configures the lookup client.
type Config struct {
	// Endpoint is the autocomplete endpoint URL.
	Endpoint string

	// APIKey and Origin form the credential pair sent on every call.
	APIKey string
	Origin string

	// Countries constrains results to ISO country codes.
	Countries []string

	// MaxResults is the default result cap when a request does not
	// override it.
	MaxResults int

	// Timeout overrides DefaultTimeout when positive.
	Timeout time.Duration
}

// Client queries the lookup service over HTTP. Calls are rate limited
// client side; cancellation propagates through the request context and
// surfaces as context.Canceled so callers can treat aborts as silent.
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *RateLimiter
}

// NewClient creates a lookup client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: timeout},
		limiter: NewRateLimiter(),
	}
}

// Find issues one lookup request and decodes the ranked results.
// Result order is preserved exactly as the service returned it.
func (c *Client) Find(ctx context.Context, req driven.LookupRequest) ([]domain.Location, error) {
	if !req.Valid() {
		return nil, fmt.Errorf("text and container are mutually exclusive: %w", domain.ErrInvalidRequest)
	}
	if c.cfg.APIKey == "" || c.cfg.Origin == "" {
		return nil, domain.ErrMissingCredentials
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		// Wrapping preserves context.Canceled for supersession checks.
		return nil, fmt.Errorf("lookup request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("lookup returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		return nil, fmt.Errorf("unexpected status %d: %w", resp.StatusCode, domain.ErrLookupFailed)
	}

	var payload findResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode lookup response: %w", err)
	}

	locs := make([]domain.Location, 0, len(payload.Results))
	for _, r := range payload.Results {
		locs = append(locs, r.toDomain())
	}
	return locs, nil
}

// buildURL assembles the endpoint with the fixed and per-call query
// parameters.
func (c *Client) buildURL(req driven.LookupRequest) (string, error) {
	u, err := url.Parse(c.cfg.Endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}

	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	q.Set("origin", c.cfg.Origin)
	q.Set("searchFor", searchFor)
	if len(c.cfg.Countries) > 0 {
		q.Set("countries", strings.Join(c.cfg.Countries, ","))
	}
	if maxResults > 0 {
		q.Set("maxResults", strconv.Itoa(maxResults))
	}
	if req.Container != "" {
		q.Set("container", req.Container)
	} else {
		q.Set("text", req.Text)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// findResponse mirrors the service's wire format.
type findResponse struct {
	Results []locationPayload `json:"results"`
}

type textPayload struct {
	Text       string `json:"text"`
	Highlights []int  `json:"highlights"`
}

type locationPayload struct {
	ID          string      `json:"id"`
	Type        string      `json:"type"`
	Primary     textPayload `json:"primary"`
	Secondary   textPayload `json:"secondary"`
	IsContainer bool        `json:"isContainer"`
	Container   string      `json:"container"`
	CountryCode string      `json:"countryCode"`
}

func (p locationPayload) toDomain() domain.Location {
	key := p.ID
	if key == "" {
		// Responses occasionally omit ids; selections still need a
		// stable key for the lifetime of the list.
		key = uuid.NewString()
	}
	return domain.Location{
		Key:         key,
		Primary:     domain.Highlightable{Text: p.Primary.Text, Highlights: p.Primary.Highlights},
		Secondary:   domain.Highlightable{Text: p.Secondary.Text, Highlights: p.Secondary.Highlights},
		Type:        domain.LocationType(strings.ToLower(p.Type)),
		IsContainer: p.IsContainer,
		Container:   p.Container,
		CountryCode: p.CountryCode,
	}
}
