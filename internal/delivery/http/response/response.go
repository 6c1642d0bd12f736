// Package response holds the JSON shapes the API returns.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorInfo carries the machine-readable part of an error response.
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "EMAIL_TAKEN"
	Details string `json:"details,omitempty"` // Detailed error description
}

// ErrorBody is the envelope for every error response.
type ErrorBody struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error"`
}

// Error writes an error response.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}
