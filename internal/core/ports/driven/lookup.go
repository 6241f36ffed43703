package driven

import (
	"context"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

// LookupRequest describes one call to the lookup service. Exactly one
// of Text or Container must be set: Text for a free-text or three-word
// query, Container for a drill-down into a previously returned group.
type LookupRequest struct {
	// Text is the trimmed query string.
	Text string

	// Container is the group token from a container location.
	Container string

	// MaxResults overrides the service's result cap for this call.
	// Zero means the client's configured default.
	MaxResults int
}

// Valid reports whether exactly one query dimension is set.
func (r LookupRequest) Valid() bool {
	return (r.Text != "") != (r.Container != "")
}

// LookupClient finds candidate locations for a query. Implementations
// must honour context cancellation and return an error satisfying
// errors.Is(err, context.Canceled) for an aborted call, so callers can
// distinguish supersession from genuine failure.
//
// Result order is the service's ranking; callers never reorder.
type LookupClient interface {
	Find(ctx context.Context, req LookupRequest) ([]domain.Location, error)
}
