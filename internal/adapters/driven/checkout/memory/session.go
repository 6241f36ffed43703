// Package memory provides an in-memory driven.CheckoutSession used by
// demo mode and tests.
package memory

import (
	"context"
	"sync"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

// Ensure Session implements the driven port.
var _ driven.CheckoutSession = (*Session)(nil)

// Session records applied addresses and can simulate rejections.
type Session struct {
	mu      sync.Mutex
	applied []domain.Address
	err     error
}

// NewSession creates an empty in-memory session.
func NewSession() *Session {
	return &Session{}
}

// FailWith makes every subsequent apply return err. Pass nil to clear.
func (s *Session) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// ApplyShippingAddress implements driven.CheckoutSession.
func (s *Session) ApplyShippingAddress(ctx context.Context, addr domain.Address) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.applied = append(s.applied, addr)
	return nil
}

// Applied returns the addresses applied so far, oldest first.
func (s *Session) Applied() []domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Address, len(s.applied))
	copy(out, s.applied)
	return out
}

// Current returns the most recently applied address, if any.
func (s *Session) Current() (domain.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.applied) == 0 {
		return domain.Address{}, false
	}
	return s.applied[len(s.applied)-1], true
}
