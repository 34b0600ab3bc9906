package handler

import (
	"context"
	"net/http"
	"testing"

	"msgboard/internal/domain/entity"
	mockUC "msgboard/internal/mocks/usecase"
	"msgboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageHandler_Create_Success(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	created := &entity.Message{ID: uuid.New(), Description: "hello world"}

	uc.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*usecase.CreateMessageInput")).
		Run(func(ctx context.Context, input *usecase.CreateMessageInput) {
			assert.Equal(t, "hello world", input.Description)
		}).
		Return(created, nil)

	c, rec := newHandlerTestContext(t, http.MethodPost, "/message/create",
		`{"description":"hello world"}`)

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello world")
}

func TestMessageHandler_Create_MissingDescription(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	c, _ := newHandlerTestContext(t, http.MethodPost, "/message/create", `{}`)

	err := h.Create(c)

	require.Error(t, err)
}

func TestMessageHandler_GetAll_Success(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	stored := []*entity.Message{
		{ID: uuid.New(), Description: "first"},
		{ID: uuid.New(), Description: "second"},
	}

	uc.EXPECT().GetAll(mock.Anything).Return(stored, nil)

	c, rec := newHandlerTestContext(t, http.MethodGet, "/message/all", "")

	err := h.GetAll(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "first")
	assert.Contains(t, rec.Body.String(), "second")
}

func TestMessageHandler_GetByID_InvalidID(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	c, rec := newHandlerTestContext(t, http.MethodGet, "/message/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.GetByID(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestMessageHandler_Update_Success(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	messageID := uuid.New()
	updated := &entity.Message{ID: messageID, Description: "updated text"}

	uc.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*usecase.UpdateMessageInput")).
		Run(func(ctx context.Context, input *usecase.UpdateMessageInput) {
			assert.Equal(t, messageID, input.MessageID)
			assert.Equal(t, "updated text", input.Description)
		}).
		Return(updated, nil)

	c, rec := newHandlerTestContext(t, http.MethodPatch, "/message/"+messageID.String(),
		`{"description":"updated text"}`)
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	err := h.Update(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "updated text")
}

func TestMessageHandler_Delete_Success(t *testing.T) {
	uc := mockUC.NewMockMessageUsecase(t)
	h := NewMessageHandler(uc, newDiscardLogger())

	messageID := uuid.New()

	uc.EXPECT().Delete(mock.Anything, messageID).Return(nil)

	c, rec := newHandlerTestContext(t, http.MethodDelete, "/message/"+messageID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(messageID.String())

	err := h.Delete(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newHandlerTestContext(t, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
