package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
	"github.com/jackc/pgerrcode"
)

func newTestFlagRepo(t *testing.T) (*flagRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &flagRepository{
		DB:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func TestGetFlag_Success(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM feature_flags").
		WithArgs(models.BiddingEnabledFlag).
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}).AddRow(models.BiddingEnabledFlag, true))

	flag, err := repo.GetFlag(context.Background(), models.BiddingEnabledFlag)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flag.Value {
		t.Error("expected flag to be true")
	}
}

func TestGetFlag_NotFound(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM feature_flags").
		WithArgs("missing_flag").
		WillReturnRows(sqlmock.NewRows([]string{"name", "value"}))

	_, err := repo.GetFlag(context.Background(), "missing_flag")
	if !errors.Is(err, ErrFlagNotFound) {
		t.Fatalf("expected ErrFlagNotFound, got %v", err)
	}
}

func TestGetFlag_TransientError_StorageUnavailable(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM feature_flags").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.GetFlag(context.Background(), models.BiddingEnabledFlag)
	if !errors.Is(err, ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestSetFlag_Success(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE feature_flags").
		WithArgs(true, models.BiddingEnabledFlag).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetFlag(context.Background(), models.BiddingEnabledFlag, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetFlag_NotFound(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE feature_flags").
		WithArgs(false, "missing_flag").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetFlag(context.Background(), "missing_flag", false)
	if !errors.Is(err, ErrFlagNotFound) {
		t.Fatalf("expected ErrFlagNotFound, got %v", err)
	}
}

func TestEnsureFlag_InsertsDefault(t *testing.T) {
	repo, mock, db := newTestFlagRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO feature_flags").
		WithArgs(models.BiddingEnabledFlag, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.EnsureFlag(context.Background(), models.BiddingEnabledFlag, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClassifyPgError(t *testing.T) {
	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionFailure,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}
	for _, code := range retryable {
		if got := NewPostgresErrorClassifier().Classify(pgError(code)); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.SyntaxError,
		pgerrcode.NotNullViolation,
	}
	for _, code := range nonRetryable {
		if got := NewPostgresErrorClassifier().Classify(pgError(code)); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}

	if got := NewPostgresErrorClassifier().Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("non-pg error must be NonRetryable, got %v", got)
	}
	if got := NewPostgresErrorClassifier().Classify(nil); got != NonRetryable {
		t.Errorf("nil error must be NonRetryable, got %v", got)
	}
}
