package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "textura/internal/delivery/context"
	domainerrors "textura/internal/domain/errors"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *domainerrors.ErrorInfo `json:"error"`
	Meta  *MetaInfo               `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, info *domainerrors.ErrorInfo) error {
	// Raw provider text stays out of 5xx and authentication responses
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		trimmed := *info
		trimmed.Details = ""
		info = &trimmed
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: info,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// HandleAppError converts a domain error to its HTTP response
func HandleAppError(c echo.Context, err error) error {
	return Error(c, StatusForKind(domainerrors.KindOf(err)), domainerrors.Describe(err))
}

// StatusForKind maps a domain error kind to an HTTP status code
func StatusForKind(kind domainerrors.Kind) int {
	switch kind {
	case domainerrors.KindInvalidCredentials:
		return http.StatusUnauthorized
	case domainerrors.KindEmailAlreadyInUse:
		return http.StatusConflict
	case domainerrors.KindWeakPassword:
		return http.StatusUnprocessableEntity
	case domainerrors.KindInvalidEmail:
		return http.StatusBadRequest
	case domainerrors.KindRateLimited, domainerrors.KindTooManyRequests:
		return http.StatusTooManyRequests
	case domainerrors.KindNetwork:
		return http.StatusServiceUnavailable
	case domainerrors.KindRequiresBackendForAccountDeletion:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
