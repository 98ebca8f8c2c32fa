package service

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/checkoutewb/backend/models"
)

// AuthService manages accounts and bearer tokens.
type AuthService interface {
	// Register creates an enabled, non-admin account. Returns
	// ErrInvalidEmail or ErrInvalidDataProvided on bad input and
	// store.ErrEmailAlreadyExists on a duplicate email.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and issues a signed bearer token.
	// Returns ErrWrongCredentials for an unknown email or wrong password
	// and ErrUserDisabled for a deactivated account.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// ParseToken validates a bearer token string and returns the parsed
	// token with the account email populated.
	ParseToken(tokenString string) (models.Token, error)

	// UserByEmail retrieves the account behind a validated token.
	UserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemService manages the auction item catalog and its photo pipeline.
type ItemService interface {
	ListItems(ctx context.Context) ([]models.AuctionItem, error)
	ItemByName(ctx context.Context, name string) (models.AuctionItem, error)

	// CreateItem creates a lot with current bid equal to the starting bid
	// and no winner. A non-nil photo is processed and uploaded before the
	// row is written. Returns store.ErrItemAlreadyExists on duplicate name.
	CreateItem(ctx context.Context, upsert models.ItemUpsert, photo io.Reader) (models.AuctionItem, error)

	// UpdateItem applies a partial edit. A starting-bid change is rejected
	// with ErrStartingBidLocked once a winning bid exists, unless the
	// submitted value equals the stored one. While no winner exists, a
	// starting-bid change also moves the current bid to keep the floor
	// invariant intact.
	UpdateItem(ctx context.Context, name string, patch models.ItemPatch, photo io.Reader) (models.AuctionItem, error)

	// DeleteItem removes the lot, its bid history (cascade) and its stored
	// photo.
	DeleteItem(ctx context.Context, name string) error
}

// BidService manages bid placement and the bidding feature flag.
type BidService interface {
	BiddingEnabled(ctx context.Context) (bool, error)
	SetBiddingEnabled(ctx context.Context, enabled bool) error

	// MinimumIncrement returns the configured minimum raise over the
	// current winning bid.
	MinimumIncrement() decimal.Decimal

	// PlaceBid runs the full placement sequence: feature-flag gate first,
	// then the locked read-validate-write transaction. Returns the updated
	// item on acceptance, ErrBiddingDisabled when the flag is off, a
	// validators sentinel on rejection or store.ErrItemNotFound.
	PlaceBid(ctx context.Context, bidder string, req models.PlaceBidRequest) (models.AuctionItem, error)

	// UserBidStatus splits the items the user has bid on into currently
	// winning and currently losing.
	UserBidStatus(ctx context.Context, email string) (models.UserBidStatus, error)
}
