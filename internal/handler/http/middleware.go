package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/checkoutewb/backend/internal/logger"
	"github.com/checkoutewb/backend/internal/service"
	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

const traceIDHeader = "X-Trace-Id"

// traceIDMiddleware assigns each request a trace ID, attaches a
// request-scoped logger carrying it to the context, and echoes the ID in
// the response so client reports can be matched to server logs.
func (h *Handler) traceIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		requestLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := requestLogger.WithContext(r.Context())

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loggingMiddleware logs one line per completed request.
func (h *Handler) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}

// authMiddleware resolves the bearer token to a full user record and
// stores it in the request context. Token parsing and the account lookup
// both happen here once, so downstream handlers only read the context.
func (h *Handler) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeUnauthenticated(w, "missing or malformed authorization header")
			return
		}

		token, err := h.auth.ParseToken(tokenString)
		if err != nil {
			writeUnauthenticated(w, "token is expired or invalid")
			return
		}

		user, err := h.auth.UserByEmail(r.Context(), token.Email)
		if err != nil {
			writeUnauthenticated(w, "token is expired or invalid")
			return
		}
		if !user.Enabled {
			writeError(w, r, service.ErrUserDisabled)
			return
		}

		ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnlyMiddleware rejects authenticated non-admin callers with 403.
func (h *Handler) adminOnlyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			writeUnauthenticated(w, "missing or malformed authorization header")
			return
		}
		if !user.Admin {
			//nolint:errcheck
			utils.WriteJSON(w, models.ErrorResponse{Code: "forbidden", Detail: "admin privileges required"}, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func writeUnauthenticated(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	//nolint:errcheck
	utils.WriteJSON(w, models.ErrorResponse{Code: "unauthenticated", Detail: detail}, http.StatusUnauthorized)
}
