package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/pkg/collatex"
	"github.com/aussiebroadwan/technotes/pkg/idx"
)

const noteColumns = `id, user_id, title, text, completed, created_at, updated_at`

type notesRepo struct {
	db *sql.DB
}

func scanNote(row rowScanner) (domain.Note, error) {
	var (
		n                  domain.Note
		completed          int
		created, updatedAt int64
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Text, &completed, &created, &updatedAt); err != nil {
		return domain.Note{}, err
	}
	n.Completed = completed != 0
	n.CreatedAt = fromMillis(created)
	n.UpdatedAt = fromMillis(updatedAt)
	return n, nil
}

func (r *notesRepo) ListNotes(ctx context.Context) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+noteColumns+` FROM notes ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *notesRepo) GetNoteByID(ctx context.Context, id string) (domain.Note, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+noteColumns+` FROM notes WHERE id = ?`, id)
	n, err := scanNote(row)
	if err != nil {
		return domain.Note{}, mapNotFound(err)
	}
	return n, nil
}

func (r *notesRepo) CreateNote(ctx context.Context, n domain.Note) (domain.Note, error) {
	if !idx.Valid(n.UserID) {
		return domain.Note{}, store.ErrInvalidID
	}

	n.ID = idx.New().String()
	n.CreatedAt = now()
	n.UpdatedAt = n.CreatedAt

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notes (id, user_id, title, title_key, text, completed, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.ID, n.UserID, n.Title, collatex.Key(n.Title), n.Text,
		boolToInt(n.Completed), toMillis(n.CreatedAt), toMillis(n.UpdatedAt),
	)
	if err != nil {
		return domain.Note{}, mapConstraint(err)
	}
	return n, nil
}

func (r *notesRepo) UpdateNote(ctx context.Context, n domain.Note) error {
	if !idx.Valid(n.UserID) {
		return store.ErrInvalidID
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE notes
		SET user_id = ?, title = ?, title_key = ?, text = ?, completed = ?, updated_at = ?
		WHERE id = ?`,
		n.UserID, n.Title, collatex.Key(n.Title), n.Text, boolToInt(n.Completed), toMillis(now()), n.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *notesRepo) DeleteNote(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *notesRepo) HasNotesForUser(ctx context.Context, userID string) (bool, error) {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM notes WHERE user_id = ?)`, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists != 0, nil
}
