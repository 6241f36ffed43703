package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driving"
	"github.com/parcelworks/addrsearch-cli/internal/logger"
)

// Banner copy surfaced by the controller. The taxonomy is exactly two
// tones; everything diagnostic goes to the logger.
const (
	msgLookupFailed    = "We couldn't fetch address suggestions. Try again shortly."
	msgContainerEmpty  = "We couldn't find addresses for that location."
	msgContainerFailed = "We couldn't expand that result."
	msgApplyFailed     = "Something went wrong applying the address."
	msgApplied         = "Shipping address updated."
)

// Ensure SuggestService implements the driving port.
var _ driving.SuggestController = (*SuggestService)(nil)

// SuggestService owns the suggestion search state machine: it debounces
// keystrokes, issues and supersedes lookup requests, expands container
// results, and hands settled addresses to the checkout session.
//
// At most one lookup request is live at any time. A new keystroke stops
// the pending debounce timer and aborts the in-flight lookup before
// arming its own, so only the latest query's results ever land. Apply
// calls are never aborted; stale apply outcomes are dropped instead.
type SuggestService struct {
	cfg     domain.SearchConfig
	lookup  driven.LookupClient
	session driven.CheckoutSession

	mu          sync.Mutex
	input       string
	suggestions []domain.Location
	searching   bool
	panelOpen   bool
	banner      *domain.Banner
	selection   domain.SelectionState

	// searchGen identifies the current debounce cycle; a stale
	// generation means the outcome was superseded and must not land.
	searchGen uint64

	// selGen does the same for selections.
	selGen uint64

	timer        *time.Timer
	cancelLookup context.CancelFunc
	closed       bool

	changes chan struct{}
}

// NewSuggestService creates a controller with the given tuning and
// collaborators.
func NewSuggestService(
	cfg domain.SearchConfig,
	lookup driven.LookupClient,
	session driven.CheckoutSession,
) *SuggestService {
	return &SuggestService{
		cfg:     cfg.Normalised(),
		lookup:  lookup,
		session: session,
		changes: make(chan struct{}, 1),
	}
}

// OnInput records a keystroke and re-arms the debounced search effect.
func (s *SuggestService) OnInput(value string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}

	s.input = value
	s.selection = domain.Idle()
	s.banner = nil
	s.searchGen++
	gen := s.searchGen
	s.stopTimerLocked()
	s.abortLookupLocked()

	trimmed := strings.TrimSpace(value)
	if utf8.RuneCountInString(trimmed) < s.cfg.MinQueryLength {
		s.suggestions = nil
		s.panelOpen = false
		s.searching = false
		s.mu.Unlock()
		s.notify()
		return
	}

	s.searching = true
	s.timer = time.AfterFunc(s.cfg.Debounce(), func() {
		s.fireLookup(gen, trimmed)
	})
	s.mu.Unlock()
	s.notify()
}

// fireLookup runs when the debounce timer elapses. The generation gate
// keeps a superseded cycle from touching state on either side of the
// network call.
func (s *SuggestService) fireLookup(gen uint64, text string) {
	s.mu.Lock()
	if s.closed || gen != s.searchGen {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancelLookup = cancel
	req := driven.LookupRequest{Text: text, MaxResults: s.cfg.MaxResults}
	s.mu.Unlock()

	locs, err := s.lookup.Find(ctx, req)
	cancel()

	s.mu.Lock()
	if s.closed || gen != s.searchGen {
		// Superseded mid-flight. The newer cycle owns the flags.
		s.mu.Unlock()
		logger.Debug("lookup for %q superseded", text)
		return
	}
	s.cancelLookup = nil

	if err != nil {
		if errors.Is(err, context.Canceled) {
			s.mu.Unlock()
			return
		}
		s.suggestions = nil
		s.panelOpen = false
		s.searching = false
		s.banner = domain.CriticalBanner(msgLookupFailed)
		s.mu.Unlock()
		logger.Warn("lookup for %q failed: %v", text, err)
		s.notify()
		return
	}

	s.suggestions = locs
	s.panelOpen = len(locs) > 0
	s.searching = false
	s.mu.Unlock()
	logger.Debug("lookup for %q returned %d results", text, len(locs))
	s.notify()
}

// OnSelect resolves a suggestion. Container locations are expanded in
// place; leaf locations are applied to the checkout session. Blocks
// until the selection settles.
func (s *SuggestService) OnSelect(ctx context.Context, loc domain.Location) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.selGen++
	sel := s.selGen
	s.selection = domain.Pending(loc.Key)
	s.banner = nil

	if loc.Expandable() {
		s.searching = true
		s.mu.Unlock()
		s.notify()
		s.expandContainer(ctx, sel, loc)
		return
	}

	s.mu.Unlock()
	s.notify()
	s.applyAddress(ctx, sel, loc)
}

// expandContainer re-queries the lookup service scoped to the group
// token. The container itself is never "selected"; on success its
// members replace the suggestion list and the selection returns to
// idle.
func (s *SuggestService) expandContainer(ctx context.Context, sel uint64, loc domain.Location) {
	req := driven.LookupRequest{
		Container:  loc.Container,
		MaxResults: s.cfg.ContainerMaxResults,
	}
	locs, err := s.lookup.Find(ctx, req)

	s.mu.Lock()
	if s.closed || sel != s.selGen {
		s.mu.Unlock()
		logger.Debug("container expansion for %q superseded", loc.Container)
		return
	}
	s.searching = false
	s.selection = domain.Idle()

	switch {
	case err != nil:
		s.banner = domain.CriticalBanner(msgContainerFailed)
		s.mu.Unlock()
		logger.Warn("container expansion for %q failed: %v", loc.Container, err)
	case len(locs) == 0:
		s.banner = domain.CriticalBanner(msgContainerEmpty)
		s.mu.Unlock()
	default:
		s.suggestions = locs
		s.panelOpen = true
		s.mu.Unlock()
		logger.Debug("container %q expanded to %d results", loc.Container, len(locs))
	}
	s.notify()
}

// applyAddress derives the structured address and hands it to the
// checkout session. The selection settles regardless of outcome so the
// UI can show a persistent confirmation marker; input and suggestions
// are left untouched so the user can retry after a failure.
func (s *SuggestService) applyAddress(ctx context.Context, sel uint64, loc domain.Location) {
	addr := domain.DeriveAddress(loc)
	err := s.session.ApplyShippingAddress(ctx, addr)

	s.mu.Lock()
	if s.closed || sel != s.selGen {
		// A newer selection owns the bookkeeping; this outcome is
		// dropped. The apply itself already happened.
		s.mu.Unlock()
		logger.Debug("apply outcome for %q dropped (superseded)", loc.Key)
		return
	}
	s.selection = domain.Settled(loc.Key)
	if err != nil {
		s.banner = domain.CriticalBanner(msgApplyFailed)
		s.mu.Unlock()
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			logger.Warn("address rejected by checkout: %v", verr)
		} else {
			logger.Warn("apply address failed: %v", err)
		}
	} else {
		s.banner = domain.SuccessBanner(msgApplied)
		s.mu.Unlock()
	}
	s.notify()
}

// OnFocus reopens the panel if suggestions exist. No fetch is issued.
func (s *SuggestService) OnFocus() {
	s.mu.Lock()
	if s.closed || len(s.suggestions) == 0 || s.panelOpen {
		s.mu.Unlock()
		return
	}
	s.panelOpen = true
	s.mu.Unlock()
	s.notify()
}

// OnDismiss closes the panel without touching the suggestion list.
func (s *SuggestService) OnDismiss() {
	s.mu.Lock()
	if s.closed || !s.panelOpen {
		s.mu.Unlock()
		return
	}
	s.panelOpen = false
	s.mu.Unlock()
	s.notify()
}

// OnClear resets the controller to its initial empty state atomically.
func (s *SuggestService) OnClear() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.searchGen++
	s.stopTimerLocked()
	s.abortLookupLocked()
	s.input = ""
	s.suggestions = nil
	s.searching = false
	s.panelOpen = false
	s.banner = nil
	s.selection = domain.Idle()
	s.mu.Unlock()
	s.notify()
}

// Snapshot returns a copy of the observable state.
func (s *SuggestService) Snapshot() driving.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := driving.Snapshot{
		Input:     s.input,
		Searching: s.searching,
		PanelOpen: s.panelOpen,
		Selection: s.selection,
	}
	if len(s.suggestions) > 0 {
		snap.Suggestions = make([]domain.Location, len(s.suggestions))
		copy(snap.Suggestions, s.suggestions)
	}
	if s.banner != nil {
		b := *s.banner
		snap.Banner = &b
	}
	return snap
}

// Changes delivers a coalesced signal after each state change.
func (s *SuggestService) Changes() <-chan struct{} {
	return s.changes
}

// Close tears the controller down, stopping the debounce timer and
// aborting any in-flight lookup.
func (s *SuggestService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.stopTimerLocked()
	s.abortLookupLocked()
	close(s.changes)
	s.mu.Unlock()
}

// notify signals observers without blocking; consecutive changes
// coalesce into one signal.
func (s *SuggestService) notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *SuggestService) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *SuggestService) abortLookupLocked() {
	if s.cancelLookup != nil {
		s.cancelLookup()
		s.cancelLookup = nil
	}
}
