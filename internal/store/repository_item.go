package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository].
// It executes all auction-item CRUD against the "auction_items" table using
// the embedded [*DB] connection. Tags are persisted as a JSONB column so the
// ordered list round-trips through database/sql without array codecs.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanItem reads one auction_items row in the canonical column order used
// by every SELECT in this repository.
func scanItem(row rowScanner) (models.AuctionItem, error) {
	var item models.AuctionItem
	var tagsJSON []byte

	err := row.Scan(
		&item.Name,
		&item.Description,
		&tagsJSON,
		&item.Image,
		&item.ImagePlaceholder,
		&item.StartingBid,
		&item.CurrentBid,
		&item.CurrentBidHolder,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		return models.AuctionItem{}, err
	}

	if len(tagsJSON) > 0 {
		if err := json.Unmarshal(tagsJSON, &item.Tags); err != nil {
			return models.AuctionItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	return item, nil
}

// ListItems returns every auction item ordered by name.
func (r *itemRepository) ListItems(ctx context.Context) ([]models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listItems)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.ListItems").Msg("failed to execute items query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapDBError(err))
	}
	defer rows.Close()

	return r.collectItems(ctx, rows)
}

// ListItemsByHolder returns the items the given user is currently winning.
func (r *itemRepository) ListItemsByHolder(ctx context.Context, email string) ([]models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listItemsByHolder, email)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItemsByHolder").
			Str("holder", email).
			Msg("failed to execute items-by-holder query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapDBError(err))
	}
	defer rows.Close()

	return r.collectItems(ctx, rows)
}

// ListItemsByNames returns the items whose names appear in the given set.
func (r *itemRepository) ListItemsByNames(ctx context.Context, names []string) ([]models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	if len(names) == 0 {
		return []models.AuctionItem{}, nil
	}

	rows, err := r.DB.QueryContext(ctx, listItemsByNames, names)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.ListItemsByNames").
			Int("names count", len(names)).
			Msg("failed to execute items-by-names query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapDBError(err))
	}
	defer rows.Close()

	return r.collectItems(ctx, rows)
}

func (r *itemRepository) collectItems(ctx context.Context, rows *sql.Rows) ([]models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	items := make([]models.AuctionItem, 0, 20)

	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "itemRepository.collectItems").Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "itemRepository.collectItems").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return items, nil
}

// FindItemByName retrieves a single item by its unique name.
func (r *itemRepository) FindItemByName(ctx context.Context, name string) (models.AuctionItem, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findItemByName, name)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "itemRepository.FindItemByName").Str("item", name).Msg("error: row is nil")
		return models.AuctionItem{}, r.wrapDBError(err)
	}

	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.AuctionItem{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "itemRepository.FindItemByName").Str("item", name).Msg("error: scanning error")
		return models.AuctionItem{}, err
	}

	return item, nil
}

// CreateItem persists a new auction item. The current bid is initialized
// to the starting bid by the INSERT itself and the winning-bid holder is
// left NULL, so a freshly created item always satisfies the unbid-item
// invariant.
func (r *itemRepository) CreateItem(ctx context.Context, item models.AuctionItem) error {
	log := logger.FromContext(ctx)

	tagsJSON, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	_, err = r.DB.ExecContext(ctx, createItem,
		item.Name, item.Description, tagsJSON, item.Image, item.ImagePlaceholder, item.StartingBid)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.CreateItem").Str("item", item.Name).Msg("failed to insert item")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return ErrItemAlreadyExists
		}
		return r.wrapDBError(err)
	}

	return nil
}

// UpdateItem applies the non-nil fields of update to the named item using
// a dynamically built UPDATE. Returns ErrItemNotFound when no row matched.
func (r *itemRepository) UpdateItem(ctx context.Context, name string, update ItemUpdate) error {
	log := logger.FromContext(ctx)

	var tagsJSON []byte
	if update.Tags != nil {
		marshalled, err := json.Marshal(update.Tags)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		tagsJSON = marshalled
	}

	query, args, err := buildUpdateItemQuery(name, update, tagsJSON)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Str("item", name).Msg("failed to build update query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.UpdateItem").Str("item", name).Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes the named item. The ON DELETE CASCADE on bids.item_name
// removes the item's bid history in the same statement.
func (r *itemRepository) DeleteItem(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteItem, name)
	if err != nil {
		log.Err(err).Str("func", "itemRepository.DeleteItem").Str("item", name).Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
