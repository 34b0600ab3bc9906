package repository

import (
	"context"
	"errors"

	"msgboard/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMessageNotFound is returned when a message lookup matches no row.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository defines the standard operations for message persistence.
type MessageRepository interface {
	// Create persists a new message entity to the storage.
	Create(ctx context.Context, message *entity.Message) error

	// FindAll retrieves every stored message.
	FindAll(ctx context.Context) ([]*entity.Message, error)

	// FindByID retrieves a single message by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)

	// Update modifies an existing message entity in the storage.
	Update(ctx context.Context, message *entity.Message) error

	// Delete removes a message by ID. Returns ErrMessageNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error
}
