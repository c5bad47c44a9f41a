package api

import (
	"elimuhub-agent/internal/api/handlers"
	"elimuhub-agent/pkg/config"
	"elimuhub-agent/pkg/middleware"
	"elimuhub-agent/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	srvCfg *config.ServerConfig,
	chatHandler *handlers.ChatHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	sessions *session.Manager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  srvCfg.ReadTimeout,
		WriteTimeout: srvCfg.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": "elimuhub-ai-agent"})
	})

	api := app.Group("/api/v1")

	chat := api.Group("/chat", middleware.ConversationMiddleware(sessions, appLogger))
	chat.Post("", chatHandler.Chat)

	api.Post("/intent", chatHandler.ClassifyIntent)
	api.Post("/feedback", chatHandler.Feedback)

	kb := api.Group("/knowledge-base")
	kb.Get("/search", knowledgeHandler.Search)
	kb.Get("/similar", knowledgeHandler.Similar)

	return app
}
