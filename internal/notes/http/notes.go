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

// NotesHandler handles all /notes endpoints.
type NotesHandler struct {
	NoteService *service.NoteService
}

// HandleList handles GET /notes
//
//	@Summary		List notes
//	@Description	Returns every note with its owner's username attached.
//	@Tags			Notes
//	@Produce		json
//	@Success		200	{array}		notesdk.Note
//	@Failure		400	{object}	notesdk.MessageResponse	"no notes"
//	@Failure		500	{object}	notesdk.MessageResponse
//	@Router			/notes [get].
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.NoteService.ListNotes(ctx)
	if err != nil {
		if errors.Is(err, service.ErrNoNotes) {
			httpx.WriteMessage(w, http.StatusBadRequest, msgNoNotes)
			return
		}
		slogx.FromContext(ctx).Error("failed to list notes", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
		return
	}

	out := make([]notesdk.Note, len(notes))
	for i, n := range notes {
		out[i] = noteResponse(n)
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate handles POST /notes
//
//	@Summary		Create note
//	@Description	Creates a note. Titles are unique under Polish case-insensitive collation.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notesdk.CreateNoteRequest	true	"user, title, text"
//	@Success		201		{object}	notesdk.MessageResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"missing fields or invalid user reference"
//	@Failure		409		{object}	notesdk.MessageResponse	"duplicate title"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/notes [post].
func (h *NotesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.CreateNoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	_, err := h.NoteService.CreateNote(ctx, service.CreateNoteInput{UserID: req.User, Title: req.Title, Text: req.Text})
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusCreated, msgNoteCreated)
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrDuplicateTitle):
		httpx.WriteMessage(w, http.StatusConflict, msgNoteTitleExists)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoteNotCreated)
	default:
		slogx.FromContext(ctx).Error("failed to create note", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

// HandleUpdate handles PATCH /notes
//
//	@Summary		Update note
//	@Description	Overwrites user, title, text and completed. All fields are required; completed must be a boolean.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notesdk.UpdateNoteRequest	true	"id, user, title, text, completed"
//	@Success		200		{object}	notesdk.MessageResponse
//	@Failure		400		{object}	notesdk.MessageResponse	"missing fields or unknown id"
//	@Failure		409		{object}	notesdk.MessageResponse	"duplicate title"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/notes [patch].
func (h *NotesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.UpdateNoteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.Completed == nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
		return
	}

	n, err := h.NoteService.UpdateNote(ctx, domain.Note{
		ID:        req.ID,
		UserID:    req.User,
		Title:     req.Title,
		Text:      req.Text,
		Completed: *req.Completed,
	})
	switch {
	case err == nil:
		httpx.WriteMessage(w, http.StatusOK, fmt.Sprintf(msgNoteUpdatedFmt, n.Title))
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, msgMissingFields)
	case errors.Is(err, service.ErrNoteNotFound):
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoteNotFoundUpdate)
	case errors.Is(err, service.ErrDuplicateTitle):
		httpx.WriteMessage(w, http.StatusConflict, msgNoteTitleConflict)
	case errors.Is(err, service.ErrInvalidInput):
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidData)
	default:
		slogx.FromContext(ctx).Error("failed to update note", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

// HandleDelete handles DELETE /notes
//
//	@Summary		Delete note
//	@Description	Deletes a note by id and returns a confirmation string.
//	@Tags			Notes
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notesdk.DeleteRequest	true	"id"
//	@Success		200		{string}	string					"confirmation"
//	@Failure		400		{object}	notesdk.MessageResponse	"missing or unknown id"
//	@Failure		500		{object}	notesdk.MessageResponse
//	@Router			/notes [delete].
func (h *NotesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req notesdk.DeleteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil || req.ID == "" {
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoteIDRequired)
		return
	}

	n, err := h.NoteService.DeleteNote(ctx, req.ID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, fmt.Sprintf(msgNoteDeletedFmt, n.Title, n.ID))
	case errors.Is(err, service.ErrNoteNotFound):
		httpx.WriteMessage(w, http.StatusBadRequest, msgNoteNotFoundDelete)
	default:
		slogx.FromContext(ctx).Error("failed to delete note", "error", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

func noteResponse(n domain.NoteWithOwner) notesdk.Note {
	return notesdk.Note{
		ID:        n.ID,
		User:      n.UserID,
		Title:     n.Title,
		Text:      n.Text,
		Completed: n.Completed,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		Username:  n.Username,
	}
}
