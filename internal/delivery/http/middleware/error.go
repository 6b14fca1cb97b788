package middleware

import (
	"errors"
	"log"

	"career-compass/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// AppError is the error type handlers return. The error middleware turns it
// into the response envelope; anything that is not an AppError or fiber.Error
// renders as a plain 500 so internals never leak to clients.
type AppError struct {
	StatusCode int
	Message    string
	Data       any
	Cause      error
}

func NewAppError(statusCode int, message string, data any, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

type ErrorMiddleware struct{}

func NewErrorMiddleware() *ErrorMiddleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := normalizeError(err)
		return response.Error(c, status, msg, data)
	}
}

func normalizeError(err error) (int, string, any) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode > 0 {
		return sanitizeError(appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 {
		return sanitizeError(fiberErr.Code, fiberErr.Message, nil)
	}

	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}

// sanitizeError collapses all 5xx variants to an opaque 500 and fills in a
// default message for client errors that did not carry one.
func sanitizeError(status int, msg string, data any) (int, string, any) {
	if status >= 500 {
		return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
	}
	if msg == "" {
		msg = defaultMessageForStatus(status)
	}
	return status, msg, data
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return response.MessageBadRequest
	case fiber.StatusUnauthorized:
		return response.MessageUnauthorized
	case fiber.StatusForbidden:
		return response.MessageForbidden
	case fiber.StatusNotFound:
		return response.MessageNotFound
	case fiber.StatusConflict:
		return response.MessageConflict
	case fiber.StatusUnprocessableEntity:
		return response.MessageUnprocessableEntity
	default:
		return response.MessageError
	}
}
