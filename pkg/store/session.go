package store

import "time"

// StudentProfile is the per-session registration state held in memory.
// Re-registering the same session id overwrites the previous profile
// (last write wins, no merge). Owned by the session repository.
type StudentProfile struct {
	SessionID     string    `json:"session_id"`
	ClassLevel    string    `json:"class"`
	Board         string    `json:"board"`
	LanguageStyle string    `json:"language"`
	DisplayName   string    `json:"name"`
	RegisteredAt  time.Time `json:"registered_at"`
}
