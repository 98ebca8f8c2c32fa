package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// bidRepository is the PostgreSQL-backed implementation of [BidRepository].
// It owns the single-item transaction that serializes concurrent bids on
// the same lot: the item row is locked with SELECT ... FOR UPDATE for the
// whole read-decide-write sequence, so two simultaneous bids can never both
// be accepted against a stale current bid. Bids on different items lock
// different rows and proceed independently.
type bidRepository struct {
	*DB
	logger *logger.Logger
}

// NewBidRepository constructs a [BidRepository] backed by the provided
// database connection and logger.
func NewBidRepository(db *DB, logger *logger.Logger) BidRepository {
	logger.Debug().Msg("creating bid repository")
	return &bidRepository{
		DB:     db,
		logger: logger,
	}
}

// PlaceBid implements [BidRepository.PlaceBid].
//
// Sequence inside one transaction:
//  1. lock the item row (FOR UPDATE); sql.ErrNoRows → ErrItemNotFound;
//  2. hand the locked bid state to decide; any error aborts with rollback
//     and is returned to the caller verbatim;
//  3. append the bid row and move the item's winning-bid pointer;
//  4. commit. Both writes become visible together or not at all.
func (r *bidRepository) PlaceBid(ctx context.Context, itemName, bidder string, amount decimal.Decimal, decide func(models.BidState) error) (models.Bid, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "bidRepository.PlaceBid").Str("item", itemName).Msg("failed to begin bid transaction")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, r.wrapDBError(err))
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	var state models.BidState
	var lockedName, holder string

	row := tx.QueryRowContext(ctx, lockItemForBid, itemName)
	if err := row.Scan(&lockedName, &state.StartingBid, &state.CurrentBid, &holder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bid{}, ErrItemNotFound
		}

		log.Err(err).Str("func", "bidRepository.PlaceBid").Str("item", itemName).Msg("failed to lock item row")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrScanningRow, r.wrapDBError(err))
	}
	state.HasWinner = holder != ""

	if err := decide(state); err != nil {
		return models.Bid{}, err
	}

	bid := models.Bid{
		ID:       uuid.New(),
		ItemName: itemName,
		Bidder:   bidder,
		Amount:   amount,
		PlacedAt: time.Now().UTC(),
	}

	if _, err := tx.ExecContext(ctx, insertBid, bid.ID, bid.ItemName, bid.Bidder, bid.Amount, bid.PlacedAt); err != nil {
		log.Err(err).Str("func", "bidRepository.PlaceBid").Str("item", itemName).Msg("failed to insert bid")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	if _, err := tx.ExecContext(ctx, applyWinningBid, bid.Amount, bid.Bidder, itemName); err != nil {
		log.Err(err).Str("func", "bidRepository.PlaceBid").Str("item", itemName).Msg("failed to update winning bid")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "bidRepository.PlaceBid").Str("item", itemName).Msg("failed to commit bid transaction")
		return models.Bid{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, r.wrapDBError(err))
	}

	return bid, nil
}

// ItemNamesBidByUser returns the distinct item names the user has placed
// accepted bids on, for the winning/losing split of the bid-status endpoint.
func (r *bidRepository) ItemNamesBidByUser(ctx context.Context, email string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, itemNamesBidByUser, email)
	if err != nil {
		log.Err(err).
			Str("func", "bidRepository.ItemNamesBidByUser").
			Str("bidder", email).
			Msg("failed to execute bid item names query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.wrapDBError(err))
	}
	defer rows.Close()

	names := make([]string, 0, 10)

	for rows.Next() {
		var name string
		if scanErr := rows.Scan(&name); scanErr != nil {
			log.Err(scanErr).Str("func", "bidRepository.ItemNamesBidByUser").Msg("failed to scan item name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		names = append(names, name)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "bidRepository.ItemNamesBidByUser").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return names, nil
}
