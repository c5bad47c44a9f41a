package middleware

import (
	"elimuhub-agent/pkg/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConversationMiddleware resolves the conversation for a chat request. A
// valid Bearer token continues an existing conversation; anything else starts
// a fresh one and hands the new token back in the X-Conversation-Token
// response header.
func ConversationMiddleware(sessions *session.Manager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get("Authorization")
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		if token != "" {
			if id, err := sessions.Parse(token); err == nil {
				c.Locals("conversationID", id)
				return c.Next()
			}
			logger.Warn("Invalid conversation token, starting new conversation")
		}

		id, newToken, err := sessions.NewConversation()
		if err != nil {
			logger.Error("Failed to create conversation", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create conversation",
			})
		}
		c.Locals("conversationID", id)
		c.Set("X-Conversation-Token", newToken)
		return c.Next()
	}
}
