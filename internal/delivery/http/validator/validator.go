// Package validator wires go-playground/validator into echo's request validation.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// requestValidator adapts validator.Validate to echo.Validator.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo request validator.
func New() echo.Validator {
	return &requestValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Struct-tag violations surface as a 400
// echo.HTTPError so the error handler renders them uniformly.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
