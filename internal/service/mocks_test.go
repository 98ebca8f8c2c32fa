package service

import (
	"context"
	"io"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/models"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

type mockItemRepository struct {
	mock.Mock
}

func (m *mockItemRepository) ListItems(ctx context.Context) ([]models.AuctionItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AuctionItem), args.Error(1)
}

func (m *mockItemRepository) FindItemByName(ctx context.Context, name string) (models.AuctionItem, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.AuctionItem), args.Error(1)
}

func (m *mockItemRepository) CreateItem(ctx context.Context, item models.AuctionItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockItemRepository) UpdateItem(ctx context.Context, name string, update store.ItemUpdate) error {
	args := m.Called(ctx, name, update)
	return args.Error(0)
}

func (m *mockItemRepository) DeleteItem(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *mockItemRepository) ListItemsByHolder(ctx context.Context, email string) ([]models.AuctionItem, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]models.AuctionItem), args.Error(1)
}

func (m *mockItemRepository) ListItemsByNames(ctx context.Context, names []string) ([]models.AuctionItem, error) {
	args := m.Called(ctx, names)
	return args.Get(0).([]models.AuctionItem), args.Error(1)
}

type mockBidRepository struct {
	mock.Mock
}

func (m *mockBidRepository) PlaceBid(ctx context.Context, itemName, bidder string, amount decimal.Decimal, decide func(models.BidState) error) (models.Bid, error) {
	args := m.Called(ctx, itemName, bidder, amount, decide)
	return args.Get(0).(models.Bid), args.Error(1)
}

func (m *mockBidRepository) ItemNamesBidByUser(ctx context.Context, email string) ([]string, error) {
	args := m.Called(ctx, email)
	return args.Get(0).([]string), args.Error(1)
}

type mockFlagRepository struct {
	mock.Mock
}

func (m *mockFlagRepository) GetFlag(ctx context.Context, name string) (models.FeatureFlag, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.FeatureFlag), args.Error(1)
}

func (m *mockFlagRepository) SetFlag(ctx context.Context, name string, value bool) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

func (m *mockFlagRepository) EnsureFlag(ctx context.Context, name string, value bool) error {
	args := m.Called(ctx, name, value)
	return args.Error(0)
}

type mockImageStore struct {
	mock.Mock
}

func (m *mockImageStore) Upload(ctx context.Context, itemName string, photo io.Reader) (string, string, error) {
	args := m.Called(ctx, itemName, photo)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockImageStore) Delete(ctx context.Context, itemName string) error {
	args := m.Called(ctx, itemName)
	return args.Error(0)
}
