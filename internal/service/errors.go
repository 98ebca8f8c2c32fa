package service

import "errors"

// Sentinel errors returned by the business services. Handlers translate
// them to HTTP status codes with errors.Is, so wrap rather than replace.
var (
	// ErrInvalidDataProvided signals a request whose fields fail basic
	// validation (empty names, non-positive amounts and the like).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidEmail signals a registration email that does not parse as a
	// valid address.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWrongCredentials covers both an unknown email and a wrong password
	// so login failures do not reveal which accounts exist.
	ErrWrongCredentials = errors.New("incorrect email or password")

	// ErrUserDisabled signals a login attempt against a deactivated account.
	ErrUserDisabled = errors.New("user account is disabled")

	// ErrTokenIsExpiredOrInvalid signals a bearer token that failed
	// signature, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrBiddingDisabled signals a bid placed while the bidding feature
	// flag is off.
	ErrBiddingDisabled = errors.New("bidding is currently disabled")

	// ErrStartingBidLocked signals an attempt to change an item's starting
	// bid after a winning bid has been recorded.
	ErrStartingBidLocked = errors.New("starting bid cannot change once an item has bids")
)
