package handler

import (
	"log/slog"
	"net/http"

	"msgboard/internal/delivery/http/response"
	"msgboard/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for message CRUD handlers.
type MessageHandler struct {
	uc     usecase.MessageUsecase
	logger *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(uc usecase.MessageUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles the message creation request.
func (h *MessageHandler) Create(c echo.Context) error {
	var input usecase.CreateMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message created successfully")
}

// GetAll handles the request to list every message.
func (h *MessageHandler) GetAll(c echo.Context) error {
	messages, err := h.uc.GetAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// GetByID handles the request to fetch a single message.
func (h *MessageHandler) GetByID(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message ID")
	}

	message, err := h.uc.GetByID(c.Request().Context(), messageID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message retrieved successfully")
}

// Update handles the message update request.
func (h *MessageHandler) Update(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message ID")
	}

	var input usecase.UpdateMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}
	input.MessageID = messageID

	message, err := h.uc.Update(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, message, "Message updated successfully")
}

// Delete handles the message deletion request.
func (h *MessageHandler) Delete(c echo.Context) error {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message ID")
	}

	if err := h.uc.Delete(c.Request().Context(), messageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Message deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
