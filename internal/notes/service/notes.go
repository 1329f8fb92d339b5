package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/pkg/slogx"
)

var (
	ErrNoNotes        = errors.New("no notes found")
	ErrNoteNotFound   = errors.New("note not found")
	ErrDuplicateTitle = errors.New("note title already exists")
)

type NoteService struct {
	Store store.Store
}

// CreateNoteInput carries the fields accepted on note creation. New notes
// are always open.
type CreateNoteInput struct {
	UserID string
	Title  string
	Text   string
}

// ListNotes returns every note with its owner's username resolved. Each
// distinct owner is looked up once; owners that no longer exist resolve to "".
func (s *NoteService) ListNotes(ctx context.Context) ([]domain.NoteWithOwner, error) {
	notes, err := s.Store.Notes().ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, ErrNoNotes
	}

	usernames := make(map[string]string)
	out := make([]domain.NoteWithOwner, 0, len(notes))
	for _, n := range notes {
		name, seen := usernames[n.UserID]
		if !seen {
			u, err := s.Store.Users().GetUserByID(ctx, n.UserID)
			switch {
			case err == nil:
				name = u.Username
			case isMissing(err):
				slogx.FromContext(ctx).Debug("note owner not found", "note_id", n.ID, "user_id", n.UserID)
			default:
				return nil, fmt.Errorf("resolve note owner: %w", err)
			}
			usernames[n.UserID] = name
		}
		out = append(out, domain.NoteWithOwner{Note: n, Username: name})
	}
	return out, nil
}

func (s *NoteService) CreateNote(ctx context.Context, in CreateNoteInput) (domain.Note, error) {
	if in.UserID == "" || in.Title == "" || in.Text == "" {
		return domain.Note{}, ErrMissingFields
	}

	n, err := s.Store.Notes().CreateNote(ctx, domain.Note{
		UserID: in.UserID,
		Title:  in.Title,
		Text:   in.Text,
	})
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Note{}, ErrDuplicateTitle
	case errors.Is(err, store.ErrInvalidID):
		return domain.Note{}, ErrInvalidInput
	default:
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}
}

// UpdateNote overwrites user, title, text and completed of an existing note.
// Keeping the note's own title is never a conflict.
func (s *NoteService) UpdateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	if n.ID == "" || n.UserID == "" || n.Title == "" || n.Text == "" {
		return domain.Note{}, ErrMissingFields
	}

	current, err := s.Store.Notes().GetNoteByID(ctx, n.ID)
	if err != nil {
		if isMissing(err) {
			return domain.Note{}, ErrNoteNotFound
		}
		return domain.Note{}, fmt.Errorf("get note: %w", err)
	}

	current.UserID = n.UserID
	current.Title = n.Title
	current.Text = n.Text
	current.Completed = n.Completed

	err = s.Store.Notes().UpdateNote(ctx, current)
	switch {
	case err == nil:
		return current, nil
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Note{}, ErrDuplicateTitle
	case errors.Is(err, store.ErrInvalidID):
		return domain.Note{}, ErrInvalidInput
	case errors.Is(err, store.ErrNotFound):
		return domain.Note{}, ErrNoteNotFound
	default:
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
}

// DeleteNote removes the note and returns it as it was before deletion.
func (s *NoteService) DeleteNote(ctx context.Context, id string) (domain.Note, error) {
	if id == "" {
		return domain.Note{}, ErrMissingFields
	}

	n, err := s.Store.Notes().GetNoteByID(ctx, id)
	if err != nil {
		if isMissing(err) {
			return domain.Note{}, ErrNoteNotFound
		}
		return domain.Note{}, fmt.Errorf("get note: %w", err)
	}

	if err := s.Store.Notes().DeleteNote(ctx, id); err != nil {
		if isMissing(err) {
			return domain.Note{}, ErrNoteNotFound
		}
		return domain.Note{}, fmt.Errorf("delete note: %w", err)
	}
	return n, nil
}
