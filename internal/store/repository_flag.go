package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
)

// flagRepository is the PostgreSQL-backed implementation of [FlagRepository].
// The flag value is read on demand on every bid placement; there is no
// in-process cache, so an admin toggle takes effect on the next request.
type flagRepository struct {
	*DB
	logger *logger.Logger
}

// NewFlagRepository constructs a [FlagRepository] backed by the provided
// database connection and logger.
func NewFlagRepository(db *DB, logger *logger.Logger) FlagRepository {
	logger.Debug().Msg("creating flag repository")
	return &flagRepository{
		DB:     db,
		logger: logger,
	}
}

// GetFlag retrieves the flag row with the given name.
func (r *flagRepository) GetFlag(ctx context.Context, name string) (models.FeatureFlag, error) {
	log := logger.FromContext(ctx)

	var flag models.FeatureFlag
	row := r.DB.QueryRowContext(ctx, getFlag, name)

	if err := row.Scan(&flag.Name, &flag.Value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FeatureFlag{}, ErrFlagNotFound
		}

		log.Err(err).Str("func", "flagRepository.GetFlag").Str("flag", name).Msg("failed to read flag")
		return models.FeatureFlag{}, r.wrapDBError(err)
	}

	return flag, nil
}

// SetFlag updates the value of an existing flag row.
func (r *flagRepository) SetFlag(ctx context.Context, name string, value bool) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, setFlag, value, name)
	if err != nil {
		log.Err(err).Str("func", "flagRepository.SetFlag").Str("flag", name).Msg("failed to update flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFlagNotFound
	}

	return nil
}

// EnsureFlag seeds the flag with the given value when no row exists yet.
// ON CONFLICT DO NOTHING keeps an existing value untouched, so the flag
// never auto-resets across restarts.
func (r *flagRepository) EnsureFlag(ctx context.Context, name string, value bool) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, ensureFlag, name, value); err != nil {
		log.Err(err).Str("func", "flagRepository.EnsureFlag").Str("flag", name).Msg("failed to seed flag")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, r.wrapDBError(err))
	}

	return nil
}
