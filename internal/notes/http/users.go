package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/service"
	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/aussiebroadwan/technotes/pkg/notesdk"
	"github.com/aussiebroadwan/technotes/pkg/slogx"
)

// UsersHandler handles all /users endpoints.
type UsersHandler struct {
	UserService *service.UserService
}

// HandleList handles GET /users
//
//	@Summary		List users
//	@Description	Returns every user. Passwords are never included.
//	@Tags			Users
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		notesdk.User
//	@Failure		400	{object}	notesdk.MessageResponse	"no users"
//	@Failure		500	{object}	notesdk.MessageResponse
//	@Router			/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoUsers) {
			httpx.WriteMessage(w, http.StatusBadRequest, msgNoUsers)
			return
		}
		slogx.FromContext(ctx).Error("failed to list users", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	out := make([]notesdk.User, len(users))
	for i, u := range users {
		out[i] = userResponse(u)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /users
//
//	@Summary		Create user
//	@Description	Creates an active user. Usernames are unique under Polish case-insensitive collation.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		notesdk.CreateUserRequest	true	"username, password, roles"
//	@Success		201		{object}	notesdk.MessageResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"missing fields or invalid data"
//	@Failure		409		{object}	notesdk.MessageResponse	"duplicate username"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	u, err := h.UserService.CreateUser(ctx, service.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusCreated, fmt.Sprintf(msgUserCreatedFmt, u.Username))
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteMessage(w, http.StatusConflict, msgUsernameExists)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidData)
	default:
		slogx.FromContext(ctx).Error("failed to create user", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

// HandleUpdate handles PATCH /users
//
//	@Summary		Update user
//	@Description	Overwrites username, roles and active. A non-empty password is re-hashed.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		notesdk.UpdateUserRequest	true	"id, username, roles, active, password?"
//	@Success		200		{object}	notesdk.MessageResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"missing fields or unknown id"
//	@Failure		409		{object}	notesdk.MessageResponse	"duplicate username"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/users [patch].
func (h *UsersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.UpdateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Active == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	u, err := h.UserService.UpdateUser(ctx, service.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Roles:    req.Roles,
		Active:   *req.Active,
		Password: req.Password,
	})
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, fmt.Sprintf(msgUserUpdatedFmt, u.Username))
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusBadRequest, msgUserNotFoundUpdate)
	case errors.Is(err, service.ErrDuplicateUsername):
		httpx.WriteMessage(w, http.StatusConflict, msgUserDuplicate)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidData)
	default:
		slogx.FromContext(ctx).Error("failed to update user", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

// HandleDelete handles DELETE /users
//
//	@Summary		Delete user
//	@Description	Deletes a user that has no notes and returns a confirmation string.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		notesdk.DeleteRequest	true	"id"
//	@Success		200		{string}	string					"confirmation"
//	@Failure		400		{object}	notesdk.MessageResponse	"missing id, user has notes, or unknown id"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/users [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.DeleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.ID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, msgUserIDRequired)
		return
	}

	u, err := h.UserService.DeleteUser(ctx, req.ID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, fmt.Sprintf(msgUserDeletedFmt, u.Username, u.ID))
	case errors.Is(err, service.ErrUserHasNotes):
		httpx.WriteMessage(w, http.StatusBadRequest, msgUserHasNotes)
	case errors.Is(err, service.ErrUserNotFound):
		httpx.WriteMessage(w, http.StatusBadRequest, msgUserNotFoundDelete)
	default:
		slogx.FromContext(ctx).Error("failed to delete user", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

func userResponse(u domain.User) notesdk.User {
	return notesdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Roles:     u.Roles,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
