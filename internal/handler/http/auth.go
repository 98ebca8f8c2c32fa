package http

import (
	"encoding/json"
	"net/http"

	"github.com/checkoutewb/backend/internal/utils"
	"github.com/checkoutewb/backend/models"
)

// register handles POST /auth/register. Accounts start enabled and
// non-admin; admin status is granted out of band.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "request body is not valid JSON")
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusCreated) //nolint:errcheck
}

// token handles POST /auth/token. The OAuth2 password-flow form shape
// ("username" and "password" fields) matches what the web front end sends.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeBadRequest(w, "request body is not a valid form")
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if email == "" || password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	token, err := h.auth.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	//nolint:errcheck
	utils.WriteJSON(w, models.TokenResponse{
		AccessToken: token.String(),
		TokenType:   "bearer",
	}, http.StatusOK)
}

// profile handles GET /auth/profile for the authenticated caller.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeUnauthenticated(w, "missing or malformed authorization header")
		return
	}

	utils.WriteJSON(w, user.Profile(), http.StatusOK) //nolint:errcheck
}
