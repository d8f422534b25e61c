package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"textura/internal/delivery/http/response"
	"textura/internal/domain/entity"
	"textura/internal/domain/service"
)

// FormHandler validates single form values.
type FormHandler struct {
	validator service.FormValidator
}

// NewFormHandler is the constructor for FormHandler, injected by Fx.
func NewFormHandler(validator service.FormValidator) *FormHandler {
	return &FormHandler{validator: validator}
}

// ValidateRequest names the field kind and the raw text to check.
type ValidateRequest struct {
	Field string `json:"field" validate:"required,oneof=name email password phone comment"`
	Value string `json:"value"`
}

// ValidateResponse mirrors entity.ValidationResult.
type ValidateResponse struct {
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
	Messages []string `json:"messages"`
}

// Validate checks one value. Violations are a successful response, not an error.
func (h *FormHandler) Validate(c echo.Context) error {
	var req ValidateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result := h.validator.Validate(req.Value, entity.FieldKind(req.Field))

	return response.Success(c, http.StatusOK, ValidateResponse{
		Valid:    result.IsValid,
		Message:  result.Message(),
		Messages: result.Messages,
	})
}
