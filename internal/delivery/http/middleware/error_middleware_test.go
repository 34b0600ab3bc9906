package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "msgboard/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newErrorTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/message/all", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestErrorMiddleware_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrUserNotFound, "user deletion failed"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_NOT_FOUND")
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestErrorMiddleware_Conflict(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(domainerrors.ErrUserAlreadyExists.WrapMessage("username already exists"), c)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "USER_ALREADY_EXISTS")
}

func TestErrorMiddleware_InternalErrorWithholdsDetails(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	err := domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "failed to list messages")
	m.HandleHTTPError(err, c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Driver detail must never reach the client.
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "field validation failed"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "field validation failed")
}

func TestErrorMiddleware_UnknownError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	m.HandleHTTPError(errors.New("something exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "something exploded")
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newErrorTestContext(t)

	_ = c.NoContent(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	// An already-committed response is left untouched.
	assert.Equal(t, http.StatusOK, rec.Code)
}
