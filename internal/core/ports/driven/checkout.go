package driven

import (
	"context"

	"github.com/parcelworks/addrsearch-cli/internal/core/domain"
)

// CheckoutSession is the host surface that receives the chosen
// shipping address. Field-level rejections come back as a
// *domain.ValidationError; anything else is an infrastructure failure.
//
// Apply calls are not cancellable once issued; the controller never
// aborts them, only ignores stale outcomes.
type CheckoutSession interface {
	ApplyShippingAddress(ctx context.Context, addr domain.Address) error
}
