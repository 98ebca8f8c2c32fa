package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
	"github.com/shopspring/decimal"
)

func newTestBidRepo(t *testing.T) (*bidRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &bidRepository{
		DB:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func lockColumns() []string {
	return []string{"name", "starting_bid", "current_bid", "holder"}
}

func TestPlaceBid_Accepted_CommitsBothWrites(t *testing.T) {
	repo, mock, db := newTestBidRepo(t)
	defer db.Close()

	ctx := context.Background()
	amount := decimal.RequireFromString("22")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM auction_items(.+)FOR UPDATE").
		WithArgs("Quilt").
		WillReturnRows(sqlmock.NewRows(lockColumns()).
			AddRow("Quilt", decimal.RequireFromString("10"), decimal.RequireFromString("20"), "leader@example.org"))
	mock.ExpectExec("INSERT INTO bids").
		WithArgs(sqlmock.AnyArg(), "Quilt", "bidder@example.org", amount, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE auction_items").
		WithArgs(amount, "bidder@example.org", "Quilt").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var observed models.BidState
	bid, err := repo.PlaceBid(ctx, "Quilt", "bidder@example.org", amount, func(state models.BidState) error {
		observed = state
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !observed.HasWinner {
		t.Error("decide must observe the existing winner")
	}
	if !observed.CurrentBid.Equal(decimal.RequireFromString("20")) {
		t.Errorf("decide observed current bid %s, want 20", observed.CurrentBid)
	}
	if bid.ItemName != "Quilt" || bid.Bidder != "bidder@example.org" {
		t.Errorf("unexpected bid record: %+v", bid)
	}
	if bid.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("bid must be assigned a non-zero ID")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPlaceBid_Rejected_RollsBackWithoutWrites(t *testing.T) {
	repo, mock, db := newTestBidRepo(t)
	defer db.Close()

	ctx := context.Background()
	rejection := errors.New("bid too low")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM auction_items(.+)FOR UPDATE").
		WithArgs("Quilt").
		WillReturnRows(sqlmock.NewRows(lockColumns()).
			AddRow("Quilt", decimal.RequireFromString("10"), decimal.RequireFromString("20"), "leader@example.org"))
	mock.ExpectRollback()

	_, err := repo.PlaceBid(ctx, "Quilt", "bidder@example.org", decimal.RequireFromString("15"), func(models.BidState) error {
		return rejection
	})
	if !errors.Is(err, rejection) {
		t.Fatalf("expected decide error to pass through, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPlaceBid_ItemNotFound(t *testing.T) {
	repo, mock, db := newTestBidRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM auction_items(.+)FOR UPDATE").
		WithArgs("Ghost").
		WillReturnRows(sqlmock.NewRows(lockColumns()))
	mock.ExpectRollback()

	_, err := repo.PlaceBid(ctx, "Ghost", "bidder@example.org", decimal.RequireFromString("10"), func(models.BidState) error {
		t.Fatal("decide must not be called when the item does not exist")
		return nil
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestPlaceBid_FirstBid_NoWinnerObserved(t *testing.T) {
	repo, mock, db := newTestBidRepo(t)
	defer db.Close()

	ctx := context.Background()
	amount := decimal.RequireFromString("10")

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM auction_items(.+)FOR UPDATE").
		WithArgs("Quilt").
		WillReturnRows(sqlmock.NewRows(lockColumns()).
			AddRow("Quilt", decimal.RequireFromString("10"), decimal.RequireFromString("10"), ""))
	mock.ExpectExec("INSERT INTO bids").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE auction_items").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err := repo.PlaceBid(ctx, "Quilt", "first@example.org", amount, func(state models.BidState) error {
		if state.HasWinner {
			t.Error("empty holder must mean no winner")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestItemNamesBidByUser(t *testing.T) {
	repo, mock, db := newTestBidRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT DISTINCT item_name FROM bids").
		WithArgs("bidder@example.org").
		WillReturnRows(sqlmock.NewRows([]string{"item_name"}).AddRow("Quilt").AddRow("Vase"))

	names, err := repo.ItemNamesBidByUser(ctx, "bidder@example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "Quilt" || names[1] != "Vase" {
		t.Errorf("unexpected names: %v", names)
	}
}
