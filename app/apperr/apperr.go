package apperr

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure so the HTTP layer can map it to a status code
// and a fixed, caller-safe message. The set is closed: new kinds require a
// new constant and an entry in the switches below.
type Kind int

const (
	KindInvalidCredentials Kind = iota
	KindUnauthenticated
	KindTokenInvalid
	KindTokenExpired
	KindForbidden
	KindNotFound
	KindValidation
	KindConflict
	KindStoreUnavailable
)

// Error carries a kind plus the exact message returned to the caller.
// Internal details (driver errors, hashes, secrets) never go in Message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidCredentials = &Error{KindInvalidCredentials, "Invalid credentials"}
	ErrUnauthenticated    = &Error{KindUnauthenticated, "Authentication required"}
	ErrTokenInvalid       = &Error{KindTokenInvalid, "Invalid token"}
	ErrTokenExpired       = &Error{KindTokenExpired, "Token expired"}
	ErrForbidden          = &Error{KindForbidden, "Forbidden"}
	ErrNotFound           = &Error{KindNotFound, "Not found"}
	ErrStoreUnavailable   = &Error{KindStoreUnavailable, "Service temporarily unavailable"}
)

// Validation wraps a request-shape failure. The message describes the bad
// input, which is caller-supplied data, not internal state.
func Validation(msg string) *Error {
	return &Error{KindValidation, msg}
}

// Conflict reports a uniqueness clash (e.g. username or roll number taken).
func Conflict(msg string) *Error {
	return &Error{KindConflict, msg}
}

// Status maps the error's kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindInvalidCredentials, KindUnauthenticated, KindTokenInvalid, KindTokenExpired:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindValidation, KindConflict:
		return fiber.StatusBadRequest
	case KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is the Fiber error handler for the service. Every failure
// maps to a fixed, caller-safe JSON body; nothing internal (driver errors,
// hashes, stack traces) ever reaches the response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return c.Status(ae.Status()).JSON(fiber.Map{"message": ae.Message})
	}

	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{"message": e.Message})
	}

	log.Printf("Unhandled error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Internal server error"})
}
