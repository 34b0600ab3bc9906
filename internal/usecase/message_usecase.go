package usecase

import (
	"context"

	"msgboard/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMessageInput defines the payload for creating a message.
type CreateMessageInput struct {
	Description string `json:"description" validate:"required"`
}

// UpdateMessageInput defines the payload for updating a message's description.
type UpdateMessageInput struct {
	MessageID   uuid.UUID `json:"-"`
	Description string    `json:"description" validate:"required"`
}

// MessageUsecase defines the interface for message CRUD operations.
type MessageUsecase interface {
	Create(ctx context.Context, input *CreateMessageInput) (*entity.Message, error)
	GetAll(ctx context.Context) ([]*entity.Message, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Message, error)
	Update(ctx context.Context, input *UpdateMessageInput) (*entity.Message, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
