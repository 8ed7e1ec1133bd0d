package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/lk16/othello/internal/config"
)

const (
	TokenHeader = "x-token"
	authRealm   = "Restricted"
)

func unauthorized(c *fiber.Ctx) error {
	// This triggers the browser to show a login dialog
	c.Set("WWW-Authenticate", `Basic realm="`+authRealm+`"`)

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "Unauthorized",
	})
}

// BasicAuth checks for the basic auth credentials of cfg.
func BasicAuth(cfg *config.ServerConfig) fiber.Handler {
	return basicauth.New(basicauth.Config{
		Users: map[string]string{
			cfg.BasicAuthUsername: cfg.BasicAuthPassword,
		},
		Realm:        authRealm,
		Unauthorized: unauthorized,
	})
}

// validToken reports whether got matches want. An empty want accepts no token.
func validToken(got string, want []byte) bool {
	if got == "" || len(want) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), want) == 1
}

// AuthOrToken accepts either the token header or basic auth.
func AuthOrToken(cfg *config.ServerConfig) fiber.Handler {
	basicAuth := BasicAuth(cfg)
	token := []byte(cfg.Token)

	return func(c *fiber.Ctx) error {
		if validToken(c.Get(TokenHeader), token) {
			return c.Next()
		}

		return basicAuth(c)
	}
}
