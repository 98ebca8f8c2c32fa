// Package service implements the business logic of the auction backend:
// account management and tokens, catalog administration with the photo
// pipeline, and bid placement behind the bidding feature flag.
package service

import (
	"github.com/checkoutewb/backend/internal/adapter"
	"github.com/checkoutewb/backend/internal/config"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/internal/validators"
)

// Services aggregates all business services behind their interfaces so the
// handler layer receives a single dependency.
type Services struct {
	AuthService
	ItemService
	BidService
}

// NewServices wires every service to the repositories, the image store and
// the application configuration.
func NewServices(storages *store.Storages, images adapter.ImageStore, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	validator := validators.NewBidValidator(cfg.App.MinimumBidIncrement)

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, log),
		ItemService: NewItemService(storages.ItemRepository, images, log),
		BidService:  NewBidService(storages.BidRepository, storages.ItemRepository, storages.FlagRepository, validator, log),
	}
}
