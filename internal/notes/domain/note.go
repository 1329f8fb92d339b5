package domain

import "time"

type Note struct {
	ID        string
	UserID    string // owning User.ID, not checked on write
	Title     string
	Text      string
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteWithOwner is a Note decorated with its owner's username for listing.
type NoteWithOwner struct {
	Note
	Username string
}
