package http

import (
	"encoding/json"
	"net/http"

	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

// biddingEnabled handles GET /bids/enabled.
func (h *Handler) biddingEnabled(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.bids.BiddingEnabled(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BiddingStatus{BiddingEnabled: enabled}, http.StatusOK) //nolint:errcheck
}

// setBiddingEnabled handles POST /bids/enabled (admin).
func (h *Handler) setBiddingEnabled(w http.ResponseWriter, r *http.Request) {
	var req models.SetBiddingMode
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	if err := h.bids.SetBiddingEnabled(r.Context(), req.Enabled); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.BiddingStatus{BiddingEnabled: req.Enabled}, http.StatusOK) //nolint:errcheck
}

// bidDelta handles GET /bids/delta.
func (h *Handler) bidDelta(w http.ResponseWriter, r *http.Request) {
	//nolint:errcheck
	utils.WriteJSON(w, models.BidDelta{MinimumIncrement: h.bids.MinimumIncrement()}, http.StatusOK)
}

// userBidStatus handles GET /bids/user for the authenticated caller.
func (h *Handler) userBidStatus(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w, "missing or malformed authorization header")
		return
	}

	status, err := h.bids.UserBidStatus(r.Context(), user.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK) //nolint:errcheck
}

// placeBid handles POST /bids/bid. The response carries the updated item
// so the front end can refresh the lot in place.
func (h *Handler) placeBid(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w, "missing or malformed authorization header")
		return
	}

	var req models.PlaceBidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	item, err := h.bids.PlaceBid(r.Context(), user.Email, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated) //nolint:errcheck
}
