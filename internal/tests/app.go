// Package tests contains helpers shared by the HTTP route tests.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal"
	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/services"
	"github.com/stretchr/testify/require"
)

const (
	TestToken    = "test-token"
	TestUsername = "user"
	TestPassword = "pass"
	TestDepth    = 2
)

// TestConfig returns a config without external services.
func TestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        config.DefaultServerHost,
		ServerPort:        config.DefaultServerPort,
		BasicAuthUsername: TestUsername,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
		SearchDepth:       TestDepth,
		BoardHeight:       config.DefaultBoardSize,
		BoardWidth:        config.DefaultBoardSize,
	}
}

// NewTestApp creates an app that keeps games in memory and does not cache bot moves.
func NewTestApp() *fiber.App {
	return internal.NewApp(TestConfig(), &services.Services{})
}

// Do sends a request to app, encoding payload as JSON when it is not nil.
// The token header is only set when token is not empty.
func Do(t *testing.T, app *fiber.App, method, path, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(payload))
		body = &buf
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("x-token", token)
	}

	// Bot moves can take longer than the default test timeout.
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	return resp
}

// Decode decodes the JSON body of resp into a T and closes the body.
func Decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var value T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&value))
	return value
}
