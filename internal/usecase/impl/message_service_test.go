package impl

import (
	"context"
	"testing"

	"msgboard/internal/domain/entity"
	domainerrors "msgboard/internal/domain/errors"
	"msgboard/internal/domain/repository"
	mockRepo "msgboard/internal/mocks/repository"
	"msgboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageServiceFixtures struct {
	service     usecase.MessageUsecase
	messageRepo *mockRepo.MockMessageRepository
}

func createTestMessageService(t *testing.T) messageServiceFixtures {
	messageRepo := mockRepo.NewMockMessageRepository(t)

	service := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		Logger:      newDiscardLogger(),
	})

	return messageServiceFixtures{
		service:     service,
		messageRepo: messageRepo,
	}
}

func TestMessageService_Create_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	input := &usecase.CreateMessageInput{Description: "hello world"}

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, message *entity.Message) {
			message.ID = uuid.New()
		}).
		Return(nil)

	message, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Description, message.Description)
	assert.NotEqual(t, uuid.Nil, message.ID)
}

func TestMessageService_Create_RepoFailure(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	input := &usecase.CreateMessageInput{Description: "hello world"}

	fx.messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(errors.New("insert failed"))

	message, err := fx.service.Create(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, message)
}

func TestMessageService_GetAll_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	stored := []*entity.Message{
		{ID: uuid.New(), Description: "first"},
		{ID: uuid.New(), Description: "second"},
	}

	fx.messageRepo.EXPECT().FindAll(ctx).Return(stored, nil)

	messages, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.Equal(t, stored, messages)
}

func TestMessageService_GetAll_Empty(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()

	fx.messageRepo.EXPECT().FindAll(ctx).Return([]*entity.Message{}, nil)

	messages, err := fx.service.GetAll(ctx)

	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMessageService_GetByID_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(nil, repository.ErrMessageNotFound)

	message, err := fx.service.GetByID(ctx, messageID)

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestMessageService_Update_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()
	input := &usecase.UpdateMessageInput{
		MessageID:   messageID,
		Description: "updated text",
	}

	stored := &entity.Message{ID: messageID, Description: "original text"}

	fx.messageRepo.EXPECT().FindByID(ctx, messageID).Return(stored, nil)
	fx.messageRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(ctx context.Context, updated *entity.Message) {
			assert.Equal(t, "updated text", updated.Description)
		}).
		Return(nil)

	message, err := fx.service.Update(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "updated text", message.Description)
}

func TestMessageService_Update_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	input := &usecase.UpdateMessageInput{
		MessageID:   uuid.New(),
		Description: "updated text",
	}

	fx.messageRepo.EXPECT().FindByID(ctx, input.MessageID).Return(nil, repository.ErrMessageNotFound)

	message, err := fx.service.Update(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, message)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}

func TestMessageService_Delete_Success(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().Delete(ctx, messageID).Return(nil)

	err := fx.service.Delete(ctx, messageID)

	require.NoError(t, err)
}

func TestMessageService_Delete_NotFound(t *testing.T) {
	fx := createTestMessageService(t)

	ctx := context.Background()
	messageID := uuid.New()

	fx.messageRepo.EXPECT().Delete(ctx, messageID).Return(repository.ErrMessageNotFound)

	err := fx.service.Delete(ctx, messageID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMessageNotFound))
}
