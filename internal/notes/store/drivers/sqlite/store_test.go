package sqlite_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/internal/notes/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.ApplyMigrations(context.Background()))
	require.NoError(t, s.Ping(context.Background()))
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	users := s.Users()

	ala, err := users.CreateUser(ctx, domain.User{
		Username:     "Ala",
		PasswordHash: "hash",
		Roles:        []string{domain.RoleEmployee, domain.RoleManager},
		Active:       true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, ala.ID)
	require.False(t, ala.CreatedAt.IsZero())

	t.Run("collated duplicate rejected", func(t *testing.T) {
		_, err := users.CreateUser(ctx, domain.User{Username: "ALA", PasswordHash: "x", Roles: []string{"Employee"}})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("lookup by collated username", func(t *testing.T) {
		got, err := users.GetUserByUsername(ctx, "aLa")
		require.NoError(t, err)
		require.Equal(t, ala.ID, got.ID)
		require.Equal(t, []string{"Employee", "Manager"}, got.Roles)
		require.True(t, got.Active)
	})

	t.Run("update keeps own username", func(t *testing.T) {
		ala.Active = false
		require.NoError(t, users.UpdateUser(ctx, ala))

		got, err := users.GetUserByID(ctx, ala.ID)
		require.NoError(t, err)
		require.False(t, got.Active)
	})

	t.Run("update onto another username conflicts", func(t *testing.T) {
		ola, err := users.CreateUser(ctx, domain.User{Username: "Ola", PasswordHash: "x", Roles: []string{"Employee"}, Active: true})
		require.NoError(t, err)

		ola.Username = "ala"
		require.ErrorIs(t, users.UpdateUser(ctx, ola), store.ErrAlreadyExists)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := users.GetUserByID(ctx, "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, users.UpdateUser(ctx, domain.User{ID: "nope", Username: "z"}), store.ErrNotFound)
		require.ErrorIs(t, users.DeleteUser(ctx, "nope"), store.ErrNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		all, err := users.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		require.Equal(t, ala.ID, all[0].ID)

		require.NoError(t, users.DeleteUser(ctx, ala.ID))
		_, err = users.GetUserByID(ctx, ala.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestRolesRoundTripExactly(t *testing.T) {
	ctx := context.Background()
	users := newStore(t).Users()

	roles := []string{"Not Admin", "Kierownik  zmiany", `quote"d`}
	u, err := users.CreateUser(ctx, domain.User{Username: "Ala", PasswordHash: "x", Roles: roles, Active: true})
	require.NoError(t, err)

	got, err := users.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, roles, got.Roles)

	got.Roles = []string{"Manager of Admin"}
	require.NoError(t, users.UpdateUser(ctx, got))

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, []string{"Manager of Admin"}, all[0].Roles)
}

func TestNotes(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	notes := s.Notes()

	owner, err := s.Users().CreateUser(ctx, domain.User{Username: "Ala", PasswordHash: "x", Roles: []string{"Employee"}, Active: true})
	require.NoError(t, err)

	note, err := notes.CreateNote(ctx, domain.Note{UserID: owner.ID, Title: "Zakupy", Text: "mleko"})
	require.NoError(t, err)
	require.NotEmpty(t, note.ID)

	t.Run("collated title duplicate rejected", func(t *testing.T) {
		_, err := notes.CreateNote(ctx, domain.Note{UserID: owner.ID, Title: "zakupy", Text: "chleb"})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("malformed owner rejected", func(t *testing.T) {
		_, err := notes.CreateNote(ctx, domain.Note{UserID: "not-an-id", Title: "Inna", Text: "x"})
		require.ErrorIs(t, err, store.ErrInvalidID)
	})

	t.Run("update with own title", func(t *testing.T) {
		note.Text = "mleko i chleb"
		note.Completed = true
		require.NoError(t, notes.UpdateNote(ctx, note))

		got, err := notes.GetNoteByID(ctx, note.ID)
		require.NoError(t, err)
		require.Equal(t, "mleko i chleb", got.Text)
		require.True(t, got.Completed)
	})

	t.Run("update onto another title conflicts", func(t *testing.T) {
		other, err := notes.CreateNote(ctx, domain.Note{UserID: owner.ID, Title: "Praca", Text: "x"})
		require.NoError(t, err)

		other.Title = "ZAKUPY"
		require.ErrorIs(t, notes.UpdateNote(ctx, other), store.ErrAlreadyExists)
	})

	t.Run("has notes for user", func(t *testing.T) {
		has, err := notes.HasNotesForUser(ctx, owner.ID)
		require.NoError(t, err)
		require.True(t, has)

		has, err = notes.HasNotesForUser(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.NoError(t, err)
		require.False(t, has)
	})

	t.Run("list and delete", func(t *testing.T) {
		all, err := notes.ListNotes(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		require.NoError(t, notes.DeleteNote(ctx, note.ID))
		require.ErrorIs(t, notes.DeleteNote(ctx, note.ID), store.ErrNotFound)
	})
}
