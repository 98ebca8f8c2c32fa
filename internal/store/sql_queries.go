package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
)

const (
	createUser = `INSERT INTO users (email, first_name, last_name, password_hash, enabled, is_admin)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING email, first_name, last_name, password_hash, enabled, is_admin, created_at;`

	findUserByEmail = `SELECT email, first_name, last_name, password_hash, enabled, is_admin, created_at
    FROM users
    WHERE email = $1;`

	listItems = `SELECT name, description, tags, image, image_placeholder, starting_bid, current_bid,
    COALESCE(current_bid_holder, ''), created_at, updated_at
    FROM auction_items
    ORDER BY name;`

	findItemByName = `SELECT name, description, tags, image, image_placeholder, starting_bid, current_bid,
    COALESCE(current_bid_holder, ''), created_at, updated_at
    FROM auction_items
    WHERE name = $1;`

	listItemsByHolder = `SELECT name, description, tags, image, image_placeholder, starting_bid, current_bid,
    COALESCE(current_bid_holder, ''), created_at, updated_at
    FROM auction_items
    WHERE current_bid_holder = $1
    ORDER BY name;`

	listItemsByNames = `SELECT name, description, tags, image, image_placeholder, starting_bid, current_bid,
    COALESCE(current_bid_holder, ''), created_at, updated_at
    FROM auction_items
    WHERE name = ANY($1)
    ORDER BY name;`

	createItem = `INSERT INTO auction_items (name, description, tags, image, image_placeholder, starting_bid, current_bid)
    VALUES ($1, $2, $3, $4, $5, $6, $6);`

	deleteItem = `DELETE FROM auction_items WHERE name = $1;`

	lockItemForBid = `SELECT name, starting_bid, current_bid, COALESCE(current_bid_holder, '')
    FROM auction_items
    WHERE name = $1
    FOR UPDATE;`

	insertBid = `INSERT INTO bids (id, item_name, bidder, amount, placed_at)
    VALUES ($1, $2, $3, $4, $5);`

	applyWinningBid = `UPDATE auction_items
    SET current_bid = $1, current_bid_holder = $2, updated_at = NOW()
    WHERE name = $3;`

	itemNamesBidByUser = `SELECT DISTINCT item_name FROM bids WHERE bidder = $1;`

	getFlag = `SELECT name, value FROM feature_flags WHERE name = $1;`

	setFlag = `UPDATE feature_flags SET value = $1 WHERE name = $2;`

	ensureFlag = `INSERT INTO feature_flags (name, value) VALUES ($1, $2)
    ON CONFLICT (name) DO NOTHING;`
)

// ItemUpdate describes a partial update of an auction item. Nil fields are
// left untouched; the repository builds the SET clause dynamically with
// squirrel from the non-nil ones. CurrentBid is set by the item service
// only while the item has no winner, to preserve the
// current_bid == starting_bid invariant for unbid items.
type ItemUpdate struct {
	Description      *string
	Tags             []string
	StartingBid      *decimal.Decimal
	CurrentBid       *decimal.Decimal
	Image            *string
	ImagePlaceholder *string
}

// buildUpdateItemQuery assembles the dynamic UPDATE for an item. Returns
// ErrBuildingSQLQuery when the update carries no changes at all.
func buildUpdateItemQuery(name string, update ItemUpdate, tagsJSON []byte) (string, []any, error) {
	builder := sq.Update("auction_items").
		PlaceholderFormat(sq.Dollar).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"name": name})

	changed := false

	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		changed = true
	}
	if update.Tags != nil {
		builder = builder.Set("tags", tagsJSON)
		changed = true
	}
	if update.StartingBid != nil {
		builder = builder.Set("starting_bid", *update.StartingBid)
		changed = true
	}
	if update.CurrentBid != nil {
		builder = builder.Set("current_bid", *update.CurrentBid)
		changed = true
	}
	if update.Image != nil {
		builder = builder.Set("image", *update.Image)
		changed = true
	}
	if update.ImagePlaceholder != nil {
		builder = builder.Set("image_placeholder", *update.ImagePlaceholder)
		changed = true
	}

	if !changed {
		return "", nil, ErrBuildingSQLQuery
	}

	return builder.ToSql()
}
