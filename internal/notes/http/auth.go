package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/technotes/internal/notes/service"
	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/aussiebroadwan/technotes/pkg/notesdk"
	"github.com/aussiebroadwan/technotes/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles POST /auth/login
//
//	@Summary		Log in
//	@Description	Verifies credentials and returns an HS256 access token. Limited to 5 attempts per minute per client address.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notesdk.LoginRequest	true	"username, password"
//	@Success		200		{object}	notesdk.LoginResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"missing fields"
//	@Failure		401		{object}	notesdk.MessageResponse	"bad credentials or inactive user"
//	@Failure		429		{object}	notesdk.MessageResponse	"too many attempts"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, notesdk.LoginResponse{AccessToken: token})
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteMessage(w, http.StatusUnauthorized, msgUnauthorized)
	default:
		slogx.FromContext(ctx).Error("failed to log in", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}
