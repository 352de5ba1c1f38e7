package helper

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrBadRequest     = errors.New("bad request")
	ErrWrite          = errors.New("write failed")
	ErrPartialFailure = errors.New("partial failure")
	ErrProvider       = errors.New("payment provider error")
)

// StatusFromError maps a service error onto an HTTP status.
func StatusFromError(err error) int {
	var fe *fiber.Error
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrPartialFailure):
		return fiber.StatusMultiStatus
	case errors.Is(err, ErrProvider):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// JsonFromError writes the error envelope for err. Internal errors are logged
// and their text is not echoed back.
func JsonFromError(c *fiber.Ctx, err error) error {
	status := StatusFromError(err)
	if status >= 500 {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
		if errors.Is(err, ErrWrite) {
			return JsonError(c, status, "Failed to write to the database")
		}
		if status == fiber.StatusBadGateway {
			return JsonError(c, status, "Payment provider rejected the request")
		}
		return JsonError(c, status, "")
	}
	return JsonError(c, status, err.Error())
}
