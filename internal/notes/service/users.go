package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/pkg/cryptox"
)

var (
	ErrNoUsers           = errors.New("no users found")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUserHasNotes      = errors.New("user has assigned notes")
)

type UserService struct {
	Store store.Store
}

type CreateUserInput struct {
	Username string
	Password string
	Roles    []string
}

type UpdateUserInput struct {
	ID       string
	Username string
	Roles    []string
	Active   bool
	// Password is re-hashed when non-empty; otherwise the stored hash is kept.
	Password string
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, ErrNoUsers
	}
	return users, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, id)
	if err != nil {
		if isMissing(err) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// CreateUser hashes the password and stores a new active user.
func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (domain.User, error) {
	if in.Username == "" || in.Password == "" || !validRoles(in.Roles) {
		return domain.User{}, ErrMissingFields
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().CreateUser(ctx, domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        in.Roles,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateUsername
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (domain.User, error) {
	if in.ID == "" || in.Username == "" || !validRoles(in.Roles) {
		return domain.User{}, ErrMissingFields
	}

	u, err := s.GetUserByID(ctx, in.ID)
	if err != nil {
		return domain.User{}, err
	}

	u.Username = in.Username
	u.Roles = in.Roles
	u.Active = in.Active
	if in.Password != "" {
		if u.PasswordHash, err = hashPassword(in.Password); err != nil {
			return domain.User{}, err
		}
	}

	err = s.Store.Users().UpdateUser(ctx, u)
	switch {
	case err == nil:
		return u, nil
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.User{}, ErrDuplicateUsername
	case isMissing(err):
		return domain.User{}, ErrUserNotFound
	default:
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
}

// DeleteUser removes a user that no note references. The note check runs
// first, so an unknown id with dangling notes still reports ErrUserHasNotes.
func (s *UserService) DeleteUser(ctx context.Context, id string) (domain.User, error) {
	if id == "" {
		return domain.User{}, ErrMissingFields
	}

	has, err := s.Store.Notes().HasNotesForUser(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("check user notes: %w", err)
	}
	if has {
		return domain.User{}, ErrUserHasNotes
	}

	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if err := s.Store.Users().DeleteUser(ctx, id); err != nil {
		if isMissing(err) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("delete user: %w", err)
	}
	return u, nil
}

// validRoles reports whether roles is a non-empty list of non-blank labels.
func validRoles(roles []string) bool {
	if len(roles) == 0 {
		return false
	}
	for _, r := range roles {
		if strings.TrimSpace(r) == "" {
			return false
		}
	}
	return true
}

func hashPassword(password string) (string, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return "", ErrInvalidInput
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
