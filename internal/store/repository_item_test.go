package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/models"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	wrapped, mock, db := newTestDB(t)
	repo := &itemRepository{
		DB:     wrapped,
		logger: logger.Nop(),
	}
	return repo, mock, db
}

func itemTestColumns() []string {
	return []string{"name", "description", "tags", "image", "image_placeholder",
		"starting_bid", "current_bid", "holder", "created_at", "updated_at"}
}

func TestListItems_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(itemTestColumns()).
		AddRow("Basket", "gift basket", []byte(`["crafts","food"]`), "https://img/basket.jpg", "LEHV6nWB2yk8",
			decimal.RequireFromString("10"), decimal.RequireFromString("14"), "leader@example.org", now, now).
		AddRow("Quilt", "hand-made quilt", []byte(`["crafts"]`), "https://img/quilt.jpg", "L6Pj0^i_.AyE",
			decimal.RequireFromString("25"), decimal.RequireFromString("25"), "", now, now)

	mock.ExpectQuery("SELECT (.+) FROM auction_items").
		WillReturnRows(rows)

	items, err := repo.ListItems(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Tags[1] != "food" {
		t.Errorf("tags not decoded: %v", items[0].Tags)
	}
	if !items[0].HasReceivedBids() {
		t.Error("item with holder must report received bids")
	}
	if items[1].HasReceivedBids() {
		t.Error("item without holder must not report received bids")
	}
}

func TestFindItemByName_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM auction_items").
		WithArgs("Ghost").
		WillReturnRows(sqlmock.NewRows(itemTestColumns()))

	_, err := repo.FindItemByName(ctx, "Ghost")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestCreateItem_DuplicateName(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	item := models.AuctionItem{
		Name:        "Quilt",
		StartingBid: decimal.RequireFromString("25"),
	}

	mock.ExpectExec("INSERT INTO auction_items").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.CreateItem(ctx, item)
	if !errors.Is(err, ErrItemAlreadyExists) {
		t.Fatalf("expected ErrItemAlreadyExists, got %v", err)
	}
}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	item := models.AuctionItem{
		Name:        "Quilt",
		Description: "hand-made quilt",
		Tags:        []string{"crafts"},
		StartingBid: decimal.RequireFromString("25"),
	}

	mock.ExpectExec("INSERT INTO auction_items").
		WithArgs("Quilt", "hand-made quilt", []byte(`["crafts"]`), "", "", item.StartingBid).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateItem(ctx, item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	description := "new description"

	mock.ExpectExec("UPDATE auction_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateItem(ctx, "Ghost", ItemUpdate{Description: &description})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestUpdateItem_NoChanges(t *testing.T) {
	repo, _, db := newTestItemRepo(t)
	defer db.Close()

	err := repo.UpdateItem(context.Background(), "Quilt", ItemUpdate{})
	if !errors.Is(err, ErrBuildingSQLQuery) {
		t.Fatalf("expected ErrBuildingSQLQuery, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM auction_items").
		WithArgs("Quilt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(context.Background(), "Quilt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM auction_items").
		WithArgs("Ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(context.Background(), "Ghost")
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestListItemsByNames_EmptyInput(t *testing.T) {
	repo, _, db := newTestItemRepo(t)
	defer db.Close()

	items, err := repo.ListItemsByNames(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty result, got %v", items)
	}
}

func TestBuildUpdateItemQuery_OnlyChangedFields(t *testing.T) {
	description := "desc"
	starting := decimal.RequireFromString("30")

	query, args, err := buildUpdateItemQuery("Quilt", ItemUpdate{
		Description: &description,
		StartingBid: &starting,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// updated_at + two SET clauses + WHERE name
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d: %v", len(args), args)
	}
	for _, fragment := range []string{"description", "starting_bid", "updated_at", "WHERE name"} {
		if !strings.Contains(query, fragment) {
			t.Errorf("query missing %q: %s", fragment, query)
		}
	}
	if strings.Contains(query, "image_placeholder") {
		t.Errorf("query must not touch unchanged columns: %s", query)
	}
}
