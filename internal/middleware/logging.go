package middleware

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logging writes one access log line per request to output, with the game ID for game routes.
func Logging(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path} | ${game}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     output,
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
			"game": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				id := c.Params("id")
				if id == "" {
					id = "-"
				}
				return output.WriteString(id)
			},
		},
	})
}
