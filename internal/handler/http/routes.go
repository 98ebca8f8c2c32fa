package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

// InitRoutes builds the full route tree.
//
// Three access tiers: public catalog reads, authenticated bidder routes,
// and admin-only catalog and flag writes.
func (h *Handler) InitRoutes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(h.traceIDMiddleware)
	router.Use(h.loggingMiddleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	router.Get("/", h.healthCheck)

	router.Get("/items", h.listItems)
	router.Get("/item", h.getItem)

	router.Get("/bids/enabled", h.biddingEnabled)
	router.Get("/bids/delta", h.bidDelta)

	router.Post("/auth/register", h.register)
	router.Post("/auth/token", h.token)

	router.Group(func(r chi.Router) {
		r.Use(h.authMiddleware)

		r.Get("/auth/profile", h.profile)
		r.Get("/bids/user", h.userBidStatus)
		r.Post("/bids/bid", h.placeBid)

		r.Group(func(r chi.Router) {
			r.Use(h.adminOnlyMiddleware)

			r.Post("/item", h.createItem)
			r.Put("/item", h.updateItem)
			r.Delete("/item", h.deleteItem)
			r.Post("/bids/enabled", h.setBiddingEnabled)
		})
	})

	return router
}

// healthCheck answers load-balancer probes.
func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.Detail{Detail: "ok"}, http.StatusOK) //nolint:errcheck
}
