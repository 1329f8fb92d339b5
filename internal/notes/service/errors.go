package service

import (
	"errors"

	"github.com/aussiebroadwan/technotes/internal/notes/store"
)

var (
	ErrMissingFields = errors.New("missing required fields")
	ErrInvalidInput  = errors.New("invalid input")
)

// isMissing reports whether err means the record could not be found,
// including ids the store cannot represent.
func isMissing(err error) bool {
	return errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID)
}
