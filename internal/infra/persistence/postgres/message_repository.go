package postgres

import (
	"context"

	"msgboard/internal/domain/entity"
	domainerrors "msgboard/internal/domain/errors"
	"msgboard/internal/domain/repository"
	"msgboard/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface using GORM.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message entity to the database.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMessageCreationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// FindAll retrieves every stored message, newest first.
func (repo *messageRepository) FindAll(ctx context.Context) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// FindByID retrieves a single message by its unique ID.
func (repo *messageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to find message by id")
	}

	return toMessageDomain(&messageM), nil
}

// Update saves an existing message entity back to the database.
func (repo *messageRepository) Update(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Save(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update message")
	}

	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

// Delete removes a message by ID.
func (repo *messageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MessageModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete message")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:          data.ID,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:          data.ID,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
