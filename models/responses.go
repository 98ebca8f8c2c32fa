package models

import "github.com/shopspring/decimal"

// Detail is the generic human-readable response body used for
// confirmations and error messages.
type Detail struct {
	Detail string `json:"detail"`
}

// ErrorResponse carries a stable machine-readable code alongside the
// human-readable detail, so clients can tell "try again" (upstream
// unavailable) apart from business-rule rejections.
type ErrorResponse struct {
	Code   string `json:"code"`
	Detail string `json:"detail"`
}

// AuctionItemList is the response body of GET /items.
type AuctionItemList struct {
	Items []AuctionItem `json:"items"`
}

// BiddingStatus is the response body of GET /bids/enabled.
type BiddingStatus struct {
	BiddingEnabled bool `json:"bidding_enabled"`
}

// BidDelta is the response body of GET /bids/delta.
type BidDelta struct {
	MinimumIncrement decimal.Decimal `json:"minimum_increment"`
}

// TokenResponse is the response body of POST /auth/token, following the
// OAuth2 password-flow shape the web front end expects.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
