package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a free-text note. It carries no relation to User.
type Message struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
