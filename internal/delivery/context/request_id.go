package context

import (
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header that carries the operation id of a request.
const HeaderXRequestID = "X-Request-Id"

// GetRequestID extracts the operation ID of the request from echo.Context.
// If not found, returns empty string.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyOperationID)).(string); ok {
		return id
	}

	return GetOperationID(c.Request().Context())
}

// SetRequestID sets the operation ID of the request in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyOperationID), requestID)
}
