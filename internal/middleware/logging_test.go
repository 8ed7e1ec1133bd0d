package middleware

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var output bytes.Buffer

	app := fiber.New()
	app.Use(Logging(&output))
	app.Get("/api/games/:id", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	tests := []struct {
		name     string
		path     string
		wantLine []string
	}{
		{name: "game route", path: "/api/games/abc", wantLine: []string{"| 200 |", "| GET | /api/games/abc | abc"}},
		{name: "other route", path: "/missing", wantLine: []string{"| 404 |", "| GET | /missing | -"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output.Reset()

			req, err := http.NewRequest(http.MethodGet, tt.path, nil)
			require.NoError(t, err)

			resp, err := app.Test(req)
			require.NoError(t, err)
			resp.Body.Close()

			line := strings.TrimSpace(output.String())
			for _, want := range tt.wantLine {
				require.Contains(t, line, want)
			}
			require.Contains(t, line, "ms |")
		})
	}
}
