package serverutils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const SessionHeader = "X-Session-Id"

// SessionMiddleware assigns each client a workspace session id. A valid id
// sent by the client is kept; anything else gets a fresh one. The id is
// echoed back on every response so the client can persist it.
func SessionMiddleware(ctx *fiber.Ctx) error {
	sessionId := ctx.Get(SessionHeader)
	if _, err := uuid.Parse(sessionId); err != nil {
		sessionId = uuid.NewString()
	}

	ctx.Locals("session_id", sessionId)
	ctx.Set(SessionHeader, sessionId)
	return ctx.Next()
}
