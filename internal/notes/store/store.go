package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrInvalidID is returned when an identifier cannot be represented by
	// the driver (e.g. a malformed ObjectID).
	ErrInvalidID = errors.New("store: invalid id")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this and expose one sub-repository per collection.
//
// Username and note title uniqueness is a driver-level unique constraint
// under Polish case-insensitive collation. Writes that would break it return
// ErrAlreadyExists.
type Store interface {
	Users() Users
	Notes() Notes

	// ApplyMigrations brings the schema (tables or indexes) up to date.
	ApplyMigrations(ctx context.Context) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	ListUsers(ctx context.Context) ([]domain.User, error)

	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername matches under the store's collation.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts u and returns it with ID and timestamps assigned.
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)

	// UpdateUser overwrites username, password hash, roles and active.
	UpdateUser(ctx context.Context, u domain.User) error

	DeleteUser(ctx context.Context, id string) error
}

type Notes interface {
	ListNotes(ctx context.Context) ([]domain.Note, error)

	GetNoteByID(ctx context.Context, id string) (domain.Note, error)

	// CreateNote inserts n and returns it with ID and timestamps assigned.
	CreateNote(ctx context.Context, n domain.Note) (domain.Note, error)

	// UpdateNote overwrites user, title, text and completed.
	UpdateNote(ctx context.Context, n domain.Note) error

	DeleteNote(ctx context.Context, id string) error

	// HasNotesForUser reports whether any note references userID.
	HasNotesForUser(ctx context.Context, userID string) (bool, error)
}
