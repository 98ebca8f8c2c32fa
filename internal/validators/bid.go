// Package validators holds the pure decision logic of the auction:
// whether a proposed bid may become the new winning bid, and whether an
// admin may still change an item's starting price. Functions here never
// touch storage; callers pass in a snapshot and apply the decision.
package validators

import (
	"github.com/checkoutewb/backend/models"
	"github.com/shopspring/decimal"
)

// BidValidator decides whether a proposed amount may be recorded as the
// new winning bid for an item. It is stateless apart from the configured
// minimum increment and is safe for concurrent use.
type BidValidator struct {
	minIncrement decimal.Decimal
}

// NewBidValidator constructs a BidValidator with the given minimum
// increment between consecutive winning bids.
func NewBidValidator(minIncrement decimal.Decimal) *BidValidator {
	return &BidValidator{minIncrement: minIncrement}
}

// MinimumIncrement returns the configured minimum increment.
func (v *BidValidator) MinimumIncrement() decimal.Decimal {
	return v.minIncrement
}

// Validate applies the bid acceptance rules to a snapshot of the item's
// bid state and a proposed amount. It returns nil on acceptance or one of
// the sentinel rejection errors.
//
// Rules, in order:
//  1. No winner yet: reject with [ErrBidBelowStartingBid] when the amount
//     is below the starting bid. Equality with the starting bid is allowed
//     for a first bid.
//  2. Winner exists: reject with [ErrBidNotAboveCurrent] when the amount
//     does not exceed the current bid. This fires before the increment
//     check, so an amount equal to the current bid is always rejected
//     for this reason.
//  3. Winner exists: reject with [ErrBidIncrementTooSmall] when the amount
//     exceeds the current bid by less than the minimum increment.
//
// Whether a winner exists is judged strictly by state.HasWinner (the
// presence of a winning-bid reference), never by comparing amounts.
func (v *BidValidator) Validate(state models.BidState, amount decimal.Decimal) error {
	if !state.HasWinner {
		if amount.LessThan(state.StartingBid) {
			return ErrBidBelowStartingBid
		}
		return nil
	}

	if amount.LessThanOrEqual(state.CurrentBid) {
		return ErrBidNotAboveCurrent
	}

	if amount.Sub(state.CurrentBid).LessThan(v.minIncrement) {
		return ErrBidIncrementTooSmall
	}

	return nil
}

// CanChangeStartingBid reports whether an admin update that sets the
// starting bid to newStartingBid is permitted. Once any bid has been
// accepted the starting price is frozen; resubmitting the unchanged value
// is still allowed so full-record updates keep working. All other item
// fields are mutable regardless of bid state.
func CanChangeStartingBid(state models.BidState, newStartingBid decimal.Decimal) bool {
	if !state.HasWinner {
		return true
	}

	return newStartingBid.Equal(state.StartingBid)
}
