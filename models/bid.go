package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bid is an immutable record of an accepted bid. Bids are never edited;
// they are removed only when their item is deleted (cascade).
type Bid struct {
	// ID is the server-assigned unique bid identifier.
	ID uuid.UUID `json:"id"`

	// ItemName references the auction item the bid was placed on.
	ItemName string `json:"item_name"`

	// Bidder is the email of the user who placed the bid.
	Bidder string `json:"bidder"`

	// Amount is the bid value in currency units.
	Amount decimal.Decimal `json:"amount"`

	// PlacedAt is the server-side timestamp of acceptance.
	PlacedAt time.Time `json:"placed_at"`
}

// TableName returns the name of the database table
// associated with the Bid model.
func (b Bid) TableName() string {
	return "bids"
}

// UserBidStatus splits the items a user has bid on into those the user is
// currently winning and those where another bidder holds the top bid.
type UserBidStatus struct {
	WinningBids []AuctionItem `json:"winning_bids"`
	LosingBids  []AuctionItem `json:"losing_bids"`
}
