package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON envelope every error is rendered as.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// statusMessage returns the fixed human-readable text for an error code.
func statusMessage(code int) string {
	switch code {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusNotFound:
		return "resource not found"
	case http.StatusMethodNotAllowed:
		return "method not allowed"
	case http.StatusUnprocessableEntity:
		return "unprocessable"
	default:
		return "internal server error"
	}
}

// HTTPErrorHandler renders every error as the JSON error envelope. It
// also covers errors raised by the router itself, such as 404 for
// unknown paths and 405 for unsupported verbs.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	if jsonErr := c.JSON(code, errorResponse{
		Success: false,
		Error:   code,
		Message: statusMessage(code),
	}); jsonErr != nil {
		c.Logger().Error(jsonErr)
	}
}
