package http

import (
	"errors"
	"net/http"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/service"
	"github.com/checkoutewb/backend/internal/store"
	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/internal/validators"
	"github.com/checkoutewb/backend/models"
)

// errorStatusMap translates the sentinel errors of the lower layers into
// HTTP status codes plus a stable machine-readable code. Order matters:
// the first errors.Is match wins.
var errorStatusMap = []struct {
	err    error
	status int
	code   string
}{
	{service.ErrWrongCredentials, http.StatusUnauthorized, "unauthenticated"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "unauthenticated"},
	{service.ErrUserDisabled, http.StatusForbidden, "forbidden"},
	{service.ErrBiddingDisabled, http.StatusForbidden, "bidding_disabled"},
	{store.ErrUserNotFound, http.StatusNotFound, "not_found"},
	{store.ErrItemNotFound, http.StatusNotFound, "not_found"},
	{store.ErrFlagNotFound, http.StatusNotFound, "not_found"},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "conflict"},
	{store.ErrItemAlreadyExists, http.StatusConflict, "conflict"},
	{service.ErrStartingBidLocked, http.StatusConflict, "conflict"},
	{validators.ErrBidBelowStartingBid, http.StatusBadRequest, "bid_below_starting_bid"},
	{validators.ErrBidNotAboveCurrent, http.StatusBadRequest, "bid_not_above_current"},
	{validators.ErrBidIncrementTooSmall, http.StatusBadRequest, "bid_increment_too_small"},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_request"},
	{service.ErrInvalidEmail, http.StatusBadRequest, "invalid_request"},
	// Retryable database failures surface as 503 so clients know the
	// request itself was fine.
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, "upstream_unavailable"},
}

// writeError maps err to its HTTP response. Unmapped errors become an
// opaque 500 so internals never leak to clients.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, mapping := range errorStatusMap {
		if errors.Is(err, mapping.err) {
			//nolint:errcheck // response writing failures are logged by the caller chain
			utils.WriteJSON(w, models.ErrorResponse{Code: mapping.code, Detail: err.Error()}, mapping.status)
			return
		}
	}

	logger.FromRequest(r).Error().Err(err).Msg("unhandled error")
	//nolint:errcheck
	utils.WriteJSON(w, models.ErrorResponse{Code: "internal", Detail: "internal server error"}, http.StatusInternalServerError)
}

// writeBadRequest reports a request that failed parsing before it reached
// any service.
func writeBadRequest(w http.ResponseWriter, detail string) {
	//nolint:errcheck
	utils.WriteJSON(w, models.ErrorResponse{Code: "invalid_request", Detail: detail}, http.StatusBadRequest)
}
