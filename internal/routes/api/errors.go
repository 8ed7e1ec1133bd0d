package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/othello"
	"github.com/lk16/othello/internal/play"
	"github.com/lk16/othello/internal/repository"
)

// StatusCode maps an error returned by the play service to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, othello.ErrInvalidMove),
		errors.Is(err, othello.ErrInvalidDimensions),
		errors.Is(err, play.ErrInvalidGameID):
		return fiber.StatusBadRequest
	case errors.Is(err, repository.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, othello.ErrGameOver),
		errors.Is(err, othello.ErrEmptyHistory),
		errors.Is(err, othello.ErrNoLegalMoves),
		errors.Is(err, repository.ErrGameConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(StatusCode(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
