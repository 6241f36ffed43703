// Package memory provides an in-memory driven.LookupClient used by
// demo mode and tests.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
	"github.com/parcelworks/addrsearch-cli/internal/core/ports/driven"
)

// Ensure Lookup implements the driven port.
var _ driven.LookupClient = (*Lookup)(nil)

// Lookup serves seeded locations by substring match on the primary
// line, and container members by token. Latency and failures can be
// injected for exercising the controller's supersession paths.
type Lookup struct {
	mu        sync.Mutex
	locations []domain.Location
	members   map[string][]domain.Location
	err       error
	delay     time.Duration
}

// NewLookup creates an empty in-memory lookup.
func NewLookup() *Lookup {
	return &Lookup{members: make(map[string][]domain.Location)}
}

// Seed replaces the searchable locations.
func (l *Lookup) Seed(locs []domain.Location) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.locations = locs
}

// SeedContainer registers the members returned for a container token.
func (l *Lookup) SeedContainer(token string, members []domain.Location) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.members[token] = members
}

// FailWith makes every subsequent Find return err. Pass nil to clear.
func (l *Lookup) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// SetDelay adds artificial latency before each Find resolves.
func (l *Lookup) SetDelay(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.delay = d
}

// Find implements driven.LookupClient.
func (l *Lookup) Find(ctx context.Context, req driven.LookupRequest) ([]domain.Location, error) {
	if !req.Valid() {
		return nil, domain.ErrInvalidRequest
	}

	l.mu.Lock()
	delay := l.delay
	err := l.err
	l.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if req.Container != "" {
		members := l.members[req.Container]
		out := make([]domain.Location, len(members))
		copy(out, members)
		return capResults(out, req.MaxResults), nil
	}

	needle := strings.ToLower(req.Text)
	var out []domain.Location
	for _, loc := range l.locations {
		if strings.Contains(strings.ToLower(loc.Primary.Text), needle) ||
			strings.Contains(strings.ToLower(loc.Secondary.Text), needle) {
			out = append(out, loc)
		}
	}
	return capResults(out, req.MaxResults), nil
}

func capResults(locs []domain.Location, max int) []domain.Location {
	if max > 0 && len(locs) > max {
		return locs[:max]
	}
	return locs
}

// SeedDemo loads a small fixture set with one container, enough to
// exercise search, drill-down and apply without credentials.
func (l *Lookup) SeedDemo() {
	l.Seed([]domain.Location{
		{
			Key:         "demo-1",
			Primary:     domain.Highlightable{Text: "10 Main Street"},
			Secondary:   domain.Highlightable{Text: "Springfield, SP1 2AB"},
			Type:        domain.LocationTypeAddress,
			CountryCode: "GB",
		},
		{
			Key:         "demo-2",
			Primary:     domain.Highlightable{Text: "Acme Ltd, 12 Main Street"},
			Secondary:   domain.Highlightable{Text: "Springfield, SP1 2AB"},
			Type:        domain.LocationTypeBusiness,
			CountryCode: "GB",
		},
		{
			Key:         "demo-grp",
			Primary:     domain.Highlightable{Text: "Main Street Apartments"},
			Secondary:   domain.Highlightable{Text: "Springfield"},
			Type:        domain.LocationTypeContainer,
			IsContainer: true,
			Container:   "demo-grp",
			CountryCode: "GB",
		},
	})
	l.SeedContainer("demo-grp", []domain.Location{
		{
			Key:         "demo-grp-1",
			Primary:     domain.Highlightable{Text: "Flat 1, Main Street Apartments"},
			Secondary:   domain.Highlightable{Text: "Springfield, SP1 2AB"},
			Type:        domain.LocationTypeSubBuilding,
			CountryCode: "GB",
		},
		{
			Key:         "demo-grp-2",
			Primary:     domain.Highlightable{Text: "Flat 2, Main Street Apartments"},
			Secondary:   domain.Highlightable{Text: "Springfield, SP1 2AB"},
			Type:        domain.LocationTypeSubBuilding,
			CountryCode: "GB",
		},
	})
}
