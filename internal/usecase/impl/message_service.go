package impl

import (
	"context"
	"log/slog"

	deliverycontext "msgboard/internal/delivery/context"
	"msgboard/internal/domain/entity"
	domainerrors "msgboard/internal/domain/errors"
	"msgboard/internal/domain/repository"
	"msgboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface. Message operations
// are direct pass-through persistence; the service only maps storage errors
// to the domain taxonomy.
type messageService struct {
	messageRepo repository.MessageRepository
	logger      *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo: params.MessageRepo,
		logger:      params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new message.
func (srv *messageService) Create(ctx context.Context, input *usecase.CreateMessageInput) (*entity.Message, error) {
	message := &entity.Message{Description: input.Description}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to create message", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	srv.log(ctx).Debug("Message created", slog.Any("messageID", message.ID))

	return message, nil
}

// GetAll returns every stored message.
func (srv *messageService) GetAll(ctx context.Context) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	return messages, nil
}

// GetByID returns a single message.
func (srv *messageService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find message")
	}

	return message, nil
}

// Update replaces a message's description.
func (srv *messageService) Update(ctx context.Context, input *usecase.UpdateMessageInput) (*entity.Message, error) {
	message, err := srv.messageRepo.FindByID(ctx, input.MessageID)
	if err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMessageNotFound, "message update failed")
		}

		return nil, errors.Wrap(err, "failed to find message for update")
	}

	message.Description = input.Description

	if err := srv.messageRepo.Update(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to persist message update")
	}

	srv.log(ctx).Debug("Message updated", slog.Any("messageID", message.ID))

	return message, nil
}

// Delete removes a message.
func (srv *messageService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.messageRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMessageNotFound) {
			return errors.Wrap(domainerrors.ErrMessageNotFound, "message deletion failed")
		}

		return errors.Wrap(err, "failed to delete message")
	}

	srv.log(ctx).Debug("Message deleted", slog.Any("messageID", id))

	return nil
}
