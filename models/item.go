package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuctionItem represents a single lot in the charity auction.
// The item name is the unique identifier used across the API and the
// database. Monetary values use decimal.Decimal so that bid comparisons
// are exact — float drift around the minimum increment would otherwise
// accept or reject bids incorrectly.
type AuctionItem struct {
	// Name is the unique item identifier.
	Name string `json:"name"`

	// Description is the free-text lot description shown to bidders.
	Description string `json:"description"`

	// Tags is an ordered list of category labels.
	Tags []string `json:"tags"`

	// Image is the public URL of the item photo in object storage.
	Image string `json:"image"`

	// ImagePlaceholder is the blurhash string rendered while the photo loads.
	ImagePlaceholder string `json:"image_placeholder"`

	// StartingBid is the floor price set at creation. Immutable once any
	// bid has been accepted.
	StartingBid decimal.Decimal `json:"starting_bid"`

	// CurrentBid is the current winning amount. Equals StartingBid until
	// the first bid is accepted. Invariant: CurrentBid >= StartingBid.
	CurrentBid decimal.Decimal `json:"current_bid"`

	// CurrentBidHolder is the email of the winning bidder, empty while no
	// bid has been accepted.
	CurrentBidHolder string `json:"current_bid_holder,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the AuctionItem model.
func (i AuctionItem) TableName() string {
	return "auction_items"
}

// HasReceivedBids reports whether a winning bid has been recorded against
// the item. Winner existence is judged strictly by the presence of the
// holder reference, not by comparing amounts.
func (i AuctionItem) HasReceivedBids() bool {
	return i.CurrentBidHolder != ""
}

// BidState is the snapshot of an item's bid-related fields handed to the
// bid validator. It carries no identity so the validator cannot reach
// back into any store.
type BidState struct {
	StartingBid decimal.Decimal
	CurrentBid  decimal.Decimal
	HasWinner   bool
}

// BidState extracts the validator snapshot from the item.
func (i AuctionItem) BidState() BidState {
	return BidState{
		StartingBid: i.StartingBid,
		CurrentBid:  i.CurrentBid,
		HasWinner:   i.HasReceivedBids(),
	}
}
