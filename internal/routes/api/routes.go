package api

import (
	"github.com/gofiber/fiber/v2"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App, auth fiber.Handler) {
	apiGroup := app.Group("/api", auth)

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Get("/games/:id/moves", GetValidMoves)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/bot", BotMove)
	apiGroup.Post("/games/:id/undo", Undo)
}
