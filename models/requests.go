package models

import "github.com/shopspring/decimal"

// RegisterRequest is the JSON payload of POST /auth/register.
// Registered accounts are always enabled and never admin; admin status is
// granted out of band.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// PlaceBidRequest is the JSON payload of POST /bids/bid.
type PlaceBidRequest struct {
	ItemName string          `json:"item_name"`
	Bid      decimal.Decimal `json:"bid"`
}

// SetBiddingMode is the JSON payload of POST /bids/enabled.
type SetBiddingMode struct {
	Enabled bool `json:"enabled"`
}

// ItemUpsert carries the writable item fields submitted by an admin when
// creating a lot. The image arrives as a separate multipart part and is
// handled by the image pipeline, so it is absent here.
type ItemUpsert struct {
	Name        string
	Description string
	StartingBid decimal.Decimal
	Tags        []string
}

// ItemPatch carries the optional field edits for an existing lot.
// Nil fields are left unchanged.
type ItemPatch struct {
	Description *string
	StartingBid *decimal.Decimal
	Tags        []string
}
