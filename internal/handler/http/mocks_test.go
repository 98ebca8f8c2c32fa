package http

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/checkoutewb/backend/internal/config"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/service"
	"github.com/checkoutewb/backend/models"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(models.Token), args.Error(1)
}

func (m *mockAuthService) ParseToken(tokenString string) (models.Token, error) {
	args := m.Called(tokenString)
	return args.Get(0).(models.Token), args.Error(1)
}

func (m *mockAuthService) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

type mockItemService struct {
	mock.Mock
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.AuctionItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AuctionItem), args.Error(1)
}

func (m *mockItemService) ItemByName(ctx context.Context, name string) (models.AuctionItem, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.AuctionItem), args.Error(1)
}

func (m *mockItemService) CreateItem(ctx context.Context, upsert models.ItemUpsert, photo io.Reader) (models.AuctionItem, error) {
	args := m.Called(ctx, upsert, photo)
	return args.Get(0).(models.AuctionItem), args.Error(1)
}

func (m *mockItemService) UpdateItem(ctx context.Context, name string, patch models.ItemPatch, photo io.Reader) (models.AuctionItem, error) {
	args := m.Called(ctx, name, patch, photo)
	return args.Get(0).(models.AuctionItem), args.Error(1)
}

func (m *mockItemService) DeleteItem(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

type mockBidService struct {
	mock.Mock
}

func (m *mockBidService) BiddingEnabled(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *mockBidService) SetBiddingEnabled(ctx context.Context, enabled bool) error {
	args := m.Called(ctx, enabled)
	return args.Error(0)
}

func (m *mockBidService) MinimumIncrement() decimal.Decimal {
	args := m.Called()
	return args.Get(0).(decimal.Decimal)
}

func (m *mockBidService) PlaceBid(ctx context.Context, bidder string, req models.PlaceBidRequest) (models.AuctionItem, error) {
	args := m.Called(ctx, bidder, req)
	return args.Get(0).(models.AuctionItem), args.Error(1)
}

func (m *mockBidService) UserBidStatus(ctx context.Context, email string) (models.UserBidStatus, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.UserBidStatus), args.Error(1)
}

type testMocks struct {
	auth  *mockAuthService
	items *mockItemService
	bids  *mockBidService
}

// newTestServer builds the full route tree over mocked services so tests
// exercise middleware and routing exactly as production does.
func newTestServer(t *testing.T) (*httptest.Server, testMocks) {
	t.Helper()

	mocks := testMocks{
		auth:  new(mockAuthService),
		items: new(mockItemService),
		bids:  new(mockBidService),
	}

	handler := NewHandler(&service.Services{
		AuthService: mocks.auth,
		ItemService: mocks.items,
		BidService:  mocks.bids,
	}, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())

	server := httptest.NewServer(handler.InitRoutes())
	t.Cleanup(server.Close)

	return server, mocks
}

// authorize arranges the mocks so a "Bearer <token>" header resolves to
// the given user.
func (m testMocks) authorize(token string, user models.User) {
	m.auth.On("ParseToken", token).Return(models.Token{Email: user.Email}, nil)
	m.auth.On("UserByEmail", mock.Anything, user.Email).Return(user, nil)
}

func bidderUser() models.User {
	return models.User{Email: "bidder@example.com", FirstName: "Pat", LastName: "Jones", Enabled: true}
}

func adminUser() models.User {
	return models.User{Email: "admin@example.com", FirstName: "Alex", LastName: "Smith", Enabled: true, Admin: true}
}
