package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/play"
)

func playService(c *fiber.Ctx) *play.Service {
	return c.Locals("play").(*play.Service) //nolint: errcheck
}

// CreateGame handles requests to start a game.
func CreateGame(c *fiber.Ctx) error {
	var payload models.CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	game, err := playService(c).CreateGame(c.Context(), payload)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame returns the state of a game.
func GetGame(c *fiber.Ctx) error {
	game, err := playService(c).GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// GetValidMoves returns the legal moves of the player to move.
func GetValidMoves(c *fiber.Ctx) error {
	game, err := playService(c).GetGame(c.Context(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game.ValidMoves)
}

// PlayMove handles a move by the player to move.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	game, err := playService(c).PlayMove(c.Context(), c.Params("id"), payload)
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// BotMove lets the bot play for the player to move.
func BotMove(c *fiber.Ctx) error {
	response, err := playService(c).BotMove(c.Context(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// Undo takes back the last move.
func Undo(c *fiber.Ctx) error {
	game, err := playService(c).Undo(c.Context(), c.Params("id"))
	if err != nil {
		return sendError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}
