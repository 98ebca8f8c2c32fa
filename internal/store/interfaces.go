package store

import (
	"context"

	"github.com/checkoutewb/backend/models"
	"github.com/shopspring/decimal"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the data-access layer for registered accounts.
type UserRepository interface {
	// CreateUser persists a new user. Returns ErrEmailAlreadyExists when
	// the email uniqueness constraint is violated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves an account by its email address.
	// Returns ErrUserNotFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository is the data-access layer for auction items.
type ItemRepository interface {
	// ListItems returns all auction items ordered by name.
	ListItems(ctx context.Context) ([]models.AuctionItem, error)

	// FindItemByName retrieves a single item. Returns ErrItemNotFound when
	// no item carries the given name.
	FindItemByName(ctx context.Context, name string) (models.AuctionItem, error)

	// CreateItem persists a new item with current_bid = starting_bid and no
	// winner. Returns ErrItemAlreadyExists on a duplicate name.
	CreateItem(ctx context.Context, item models.AuctionItem) error

	// UpdateItem applies a partial update. Returns ErrItemNotFound when the
	// named item does not exist.
	UpdateItem(ctx context.Context, name string, update ItemUpdate) error

	// DeleteItem removes the item; its bids are removed by the cascade on
	// the foreign key. Returns ErrItemNotFound when nothing was deleted.
	DeleteItem(ctx context.Context, name string) error

	// ListItemsByHolder returns the items whose current winning bid belongs
	// to the given user, ordered by name.
	ListItemsByHolder(ctx context.Context, email string) ([]models.AuctionItem, error)

	// ListItemsByNames returns the items whose names appear in the given
	// set, ordered by name.
	ListItemsByNames(ctx context.Context, names []string) ([]models.AuctionItem, error)
}

// BidRepository is the data-access layer for the append-only bid ledger.
type BidRepository interface {
	// PlaceBid runs the read-decide-write sequence for a single bid inside
	// one transaction. The item row is locked (SELECT ... FOR UPDATE) so
	// concurrent bids on the same item serialize; bids on different items
	// never contend. The decide callback receives the locked item's bid
	// state and returns nil to accept or a rejection error to abort; on
	// acceptance the new bid row is appended and the item's winning-bid
	// pointer updated before the transaction commits.
	//
	// Returns ErrItemNotFound when the item does not exist, the decide
	// error verbatim on rejection, or the recorded bid on success.
	PlaceBid(ctx context.Context, itemName, bidder string, amount decimal.Decimal, decide func(models.BidState) error) (models.Bid, error)

	// ItemNamesBidByUser returns the distinct item names the user has ever
	// placed an accepted bid on.
	ItemNamesBidByUser(ctx context.Context, email string) ([]string, error)
}

// FlagRepository is the data-access layer for persisted feature flags.
type FlagRepository interface {
	// GetFlag retrieves a flag row. Returns ErrFlagNotFound when absent.
	GetFlag(ctx context.Context, name string) (models.FeatureFlag, error)

	// SetFlag updates an existing flag. Returns ErrFlagNotFound when the
	// row does not exist.
	SetFlag(ctx context.Context, name string, value bool) error

	// EnsureFlag inserts the flag with the given default value if no row
	// exists yet. Existing rows are never overwritten, so an admin toggle
	// survives restarts.
	EnsureFlag(ctx context.Context, name string, value bool) error
}
