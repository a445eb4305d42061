package model

import "time"

type User struct {
	UserID       int64      `json:"userid"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never JSON-encode
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// Profile holds the extra account fields that live next to the user row.
// It is created in the same transaction as the user, never lazily.
type Profile struct {
	UserID int64  `json:"userid"`
	Phone  string `json:"phone_number"`
}

// AccountResponse is returned by GET /profile (user + profile merged).
type AccountResponse struct {
	UserID   int64  `json:"userid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
}
