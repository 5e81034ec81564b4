package authhandler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hris/internal/domain/auth"
	"hris/internal/transport/http/api"
	"hris/internal/transport/http/middleware"
)

type Handler struct {
	Store    *auth.Store
	Secret   string
	TokenTTL time.Duration
}

func NewHandler(store *auth.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{Store: store, Secret: secret, TokenTTL: tokenTTL}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HandleToken implements the form-based login endpoint. The response body
// is the bare token object rather than the usual envelope, matching the
// OAuth2 password-grant shape clients expect.
func (h *Handler) HandleToken(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	if err := r.ParseForm(); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid form payload", requestID)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "username and password are required", requestID)
		return
	}

	account, ok := h.Store.Authenticate(r.Context(), username, password)
	if !ok {
		// Unknown username and wrong password are indistinguishable here.
		w.Header().Set("WWW-Authenticate", "Bearer")
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "incorrect username or password", requestID)
		return
	}

	token, err := auth.GenerateToken(h.Secret, account.Username, h.TokenTTL)
	if err != nil {
		slog.Error("token issue failed", "username", account.Username, "err", err)
		api.Fail(w, http.StatusInternalServerError, "token_error", "failed to issue token", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tokenResponse{AccessToken: token, TokenType: "bearer"}); err != nil {
		slog.Warn("write token response failed", "err", err)
	}
}

// HandleDebugUser reports whether a username exists along with a masked
// hash prefix. The route is only registered outside production.
func (h *Handler) HandleDebugUser(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	username := chi.URLParam(r, "username")

	account, err := h.Store.FindByUsername(r.Context(), username)
	if err != nil {
		api.Success(w, map[string]any{"found": false}, requestID)
		return
	}

	masked := account.PasswordHash
	if len(masked) > 10 {
		masked = masked[:10] + "..."
	}
	api.Success(w, map[string]any{
		"found":               true,
		"username":            account.Username,
		"password_starts_with": masked,
	}, requestID)
}
