// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents one registered account. Username is the login key and is
// unique across the system. The password is only ever held as an encoded
// argon2id digest; no code path stores or serializes the plaintext, and the
// digest itself never leaves the server (json:"-").
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
