// Package http exposes the auction backend over REST: public catalog
// reads, authenticated bidding, and admin-only catalog and flag writes.
package http

import (
	"github.com/checkoutewb/backend/internal/config"
	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/service"
)

// Handler holds the HTTP handlers for every route and their shared
// dependencies.
type Handler struct {
	auth  service.AuthService
	items service.ItemService
	bids  service.BidService

	cfg    config.Server
	logger *logger.Logger
}

// NewHandler wires the handlers to the business services.
func NewHandler(services *service.Services, cfg config.Server, log *logger.Logger) *Handler {
	return &Handler{
		auth:   services.AuthService,
		items:  services.ItemService,
		bids:   services.BidService,
		cfg:    cfg,
		logger: log.GetChildLogger(),
	}
}
