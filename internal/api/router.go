package api

import (
	"mentorai/docs"
	"mentorai/internal/api/handlers"
	"mentorai/pkg/auth"
	"mentorai/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	curriculumHandler *handlers.CurriculumHandler,
	contentHandler *handlers.ContentHandler,
	forumHandler *handlers.ForumHandler,
	userHandler *handlers.UserHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
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

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger - the docs import registers the documentation via init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	userGroup := app.Group("/user")
	authGroup := userGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	// Curriculum routes
	curriculum := protected.Group("/curriculum")
	curriculum.Post("/generate", curriculumHandler.Generate)

	// Content routes
	content := protected.Group("/content")
	content.Post("/index", contentHandler.Index)
	content.Get("/search", contentHandler.Search)
	content.Get("/videos", contentHandler.Videos)

	// Forum routes
	forum := protected.Group("/forum")
	forum.Post("/posts", forumHandler.CreatePost)
	forum.Get("/posts", forumHandler.ListPosts)
	forum.Get("/posts/:id", forumHandler.GetPost)
	forum.Put("/posts/:id", forumHandler.UpdatePost)
	forum.Delete("/posts/:id", forumHandler.DeletePost)
	forum.Post("/posts/:id/vote", forumHandler.VotePost)
	forum.Post("/posts/:id/replies", forumHandler.CreateReply)
	forum.Delete("/replies/:id", forumHandler.DeleteReply)

	// User routes
	users := protected.Group("/users")
	users.Get("/me", userHandler.Me)
	users.Get("/me/badges", userHandler.Badges)
	users.Get("/leaderboard", userHandler.Leaderboard)

	return app
}
