package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDKey = "request_id"

// RequestIDMiddleware tags every request with a UUID, echoed in the
// X-Request-Id header so client reports can be matched to log lines.
func RequestIDMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id := ctx.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals(RequestIDKey, id)
		ctx.Set("X-Request-Id", id)
		return ctx.Next()
	}
}
