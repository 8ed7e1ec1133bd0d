package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/routes/api"
	"github.com/lk16/othello/internal/routes/version"
	"github.com/lk16/othello/internal/routes/ws"
)

func rootHandler(c *fiber.Ctx) error {
	return c.Redirect("/version")
}

// SetupRoutes registers all routes. auth protects the API and the websocket.
func SetupRoutes(app *fiber.App, auth fiber.Handler) {
	// Serve API routes
	api.SetupRoutes(app, auth)

	// Serve websocket
	ws.SetupRoutes(app, auth)

	// Serve version info
	version.SetupRoutes(app)

	// Serve root page
	app.Get("/", rootHandler)
}
