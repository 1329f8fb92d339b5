package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/pkg/collatex"
	"github.com/aussiebroadwan/technotes/pkg/idx"
)

const userColumns = `id, username, password_hash, roles, active, created_at, updated_at`

type usersRepo struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u                  domain.User
		roles              string
		active             int
		created, updatedAt int64
	)
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &roles, &active, &created, &updatedAt)
	if err != nil {
		return domain.User{}, err
	}
	if u.Roles, err = decodeRoles(roles); err != nil {
		return domain.User{}, err
	}
	u.Active = active != 0
	u.CreatedAt = fromMillis(created)
	u.UpdatedAt = fromMillis(updatedAt)
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username_key = ?`, collatex.Key(username))
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	roles, err := encodeRoles(u.Roles)
	if err != nil {
		return domain.User{}, err
	}

	u.ID = idx.New().String()
	u.CreatedAt = now()
	u.UpdatedAt = u.CreatedAt

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, username_key, password_hash, roles, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, collatex.Key(u.Username), u.PasswordHash, roles,
		boolToInt(u.Active), toMillis(u.CreatedAt), toMillis(u.UpdatedAt),
	)
	if err != nil {
		return domain.User{}, mapConstraint(err)
	}
	return u, nil
}

func (r *usersRepo) UpdateUser(ctx context.Context, u domain.User) error {
	roles, err := encodeRoles(u.Roles)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET username = ?, username_key = ?, password_hash = ?, roles = ?, active = ?, updated_at = ?
		WHERE id = ?`,
		u.Username, collatex.Key(u.Username), u.PasswordHash, roles,
		boolToInt(u.Active), toMillis(now()), u.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireAffected(res)
}

func (r *usersRepo) DeleteUser(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
