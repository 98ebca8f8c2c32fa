package validators

import "errors"

// Bid rejection reasons. Callers match against these values with
// [errors.Is] to pick the response detail and status code.
var (
	// ErrBidBelowStartingBid is returned for a first bid below the
	// starting price. A first bid equal to the starting price is accepted.
	ErrBidBelowStartingBid = errors.New("bid amount is below the starting bid")

	// ErrBidNotAboveCurrent is returned once a winner exists and the
	// proposed amount does not exceed the current winning bid.
	ErrBidNotAboveCurrent = errors.New("bid amount must be above the current bid")

	// ErrBidIncrementTooSmall is returned once a winner exists and the
	// proposed amount exceeds the current bid by less than the configured
	// minimum increment.
	ErrBidIncrementTooSmall = errors.New("bid increment is below the minimum")
)
