package notesdk

import "time"

// MessageResponse is the {"message": ...} envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// ============================================================================
// Notes
// ============================================================================

// Note is a note as returned by GET /notes.
type Note struct {
	ID        string    `json:"_id"`
	User      string    `json:"user"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Username of the owner; empty when the owner no longer exists.
	Username string `json:"username"`
}

// CreateNoteRequest creates an open note. There is no completed field; new
// notes always start with completed false.
type CreateNoteRequest struct {
	User  string `json:"user"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type UpdateNoteRequest struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

// DeleteRequest identifies the record to delete.
type DeleteRequest struct {
	ID string `json:"id"`
}

// ============================================================================
// Users
// ============================================================================

// User is a user as returned by GET /users. Passwords are never returned.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Roles     []string  `json:"roles"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type UpdateUserRequest struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
	// Password is only changed when non-empty.
	Password string `json:"password,omitempty"`
}

// ============================================================================
// Auth
// ============================================================================

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// Bool returns a pointer to b, for the optional boolean request fields.
func Bool(b bool) *bool { return &b }
