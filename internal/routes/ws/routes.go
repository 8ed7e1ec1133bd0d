package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/play"
	"github.com/lk16/othello/internal/ws"
)

func handleWs(c *websocket.Conn) {
	service := c.Locals("play").(*play.Service) //nolint: errcheck

	h := ws.NewHandler(c, service)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgradeOnly rejects plain HTTP requests on the websocket route.
func upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App, auth fiber.Handler) {
	app.Get("/ws", auth, upgradeOnly, websocket.New(handleWs))
}
