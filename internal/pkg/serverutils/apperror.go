package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is a request error that maps directly to an HTTP status and a
// user-facing message. Anything else that escapes a controller becomes a
// generic 500 in the error-handler middleware.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewClientError covers malformed requests and unknown sessions.
func NewClientError(message string) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message}
}

// NewMediaError covers recoverable media failures (empty OCR output,
// unintelligible speech). Surfaced as instructional messages, no retry.
func NewMediaError(message string) *AppError {
	return &AppError{Status: fiber.StatusUnprocessableEntity, Message: message}
}
