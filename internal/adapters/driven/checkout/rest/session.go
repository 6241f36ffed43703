// Package rest implements driven.CheckoutSession against a checkout
// host that accepts shipping address updates over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
	"github.com/parcelworks/addrsearch-cli/internal/logger"
)

// DefaultTimeout is the per-request HTTP timeout. Apply calls are not
// cancellable mid-flight by the controller, so the timeout is the only
// bound on a hung host.
const DefaultTimeout = 15 * time.Second

// Ensure Session implements the driven port.
var _ driven.CheckoutSession = (*Session)(nil)

// Session writes applied addresses to the host checkout session
// endpoint.
type Session struct {
	endpoint string
	http     *http.Client
}

// NewSession creates a checkout session adapter for endpoint.
func NewSession(endpoint string) *Session {
	return &Session{
		endpoint: endpoint,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
}

// ApplyShippingAddress PUTs the structured address. A 422 response
// decodes into *domain.ValidationError; other non-2xx statuses are
// infrastructure failures.
func (s *Session) ApplyShippingAddress(ctx context.Context, addr domain.Address) error {
	body, err := json.Marshal(addr)
	if err != nil {
		return fmt.Errorf("encode address: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build apply request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("apply address: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var payload struct {
			Errors map[string]string `json:"errors"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return fmt.Errorf("decode validation response: %w", err)
		}
		return &domain.ValidationError{Fields: payload.Errors}
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		logger.Warn("checkout returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		return fmt.Errorf("apply address: unexpected status %d", resp.StatusCode)
	}
}
