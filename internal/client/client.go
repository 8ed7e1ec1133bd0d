package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lk16/othello/internal/config"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/othello"
)

const (
	clientTimeout = 10 * time.Second
)

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the games API of a running server.
type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	httpClient *http.Client
}

func NewClient(config *config.ClientConfig) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(req.Context(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			// Keep the token out of logs
			if strings.EqualFold(key, "x-token") {
				value = "***"
			}
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.GetBody != nil {
		body, err := req.GetBody()
		if err == nil {
			defer body.Close()
			if data, err := io.ReadAll(body); err == nil && len(data) > 0 {
				builder.WriteString(" -d '")
				builder.WriteString(strings.ReplaceAll(string(data), "'", "'\\''"))
				builder.WriteString("'")
			}
		}
	}

	slog.Debug("Sending request", "command", builder.String())
}

func (c *Client) request(ctx context.Context, method string, path string, payload any, result any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.config.ServerURL, "/")+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("X-Token", c.config.Token)

	c.logRequestAsCurl(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Response", "status", resp.Status, "body", string(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp models.ErrorResponse
		if err = json.Unmarshal(data, &errResp); err != nil || errResp.Error == "" {
			errResp.Error = resp.Status
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if err = json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// CreateGame starts a game. Zero dimensions use the server defaults.
func (c *Client) CreateGame(ctx context.Context, height, width int) (models.GameResponse, error) {
	var game models.GameResponse
	payload := models.CreateGameRequest{Height: height, Width: width}

	if err := c.request(ctx, http.MethodPost, "/api/games", payload, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

// GetGame loads the state of a game.
func (c *Client) GetGame(ctx context.Context, id string) (models.GameResponse, error) {
	var game models.GameResponse

	if err := c.request(ctx, http.MethodGet, "/api/games/"+id, nil, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// PlayMove plays pos for the player to move.
func (c *Client) PlayMove(ctx context.Context, id string, pos othello.Position) (models.GameResponse, error) {
	var game models.GameResponse
	payload := models.MoveRequest{Row: pos.Row, Col: pos.Col}

	if err := c.request(ctx, http.MethodPost, "/api/games/"+id+"/moves", payload, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to play move: %w", err)
	}
	return game, nil
}

// BotMove lets the server bot play for the player to move.
func (c *Client) BotMove(ctx context.Context, id string) (models.BotMoveResponse, error) {
	var response models.BotMoveResponse

	if err := c.request(ctx, http.MethodPost, "/api/games/"+id+"/bot", nil, &response); err != nil {
		return models.BotMoveResponse{}, fmt.Errorf("failed to get bot move: %w", err)
	}
	return response, nil
}

// Undo takes back the last move. A game without moves gives an error matching othello.ErrEmptyHistory.
func (c *Client) Undo(ctx context.Context, id string) (models.GameResponse, error) {
	var game models.GameResponse

	if err := c.request(ctx, http.MethodPost, "/api/games/"+id+"/undo", nil, &game); err != nil {
		if isEmptyHistory(err) {
			return models.GameResponse{}, fmt.Errorf("failed to undo: %w: %w", othello.ErrEmptyHistory, err)
		}
		return models.GameResponse{}, fmt.Errorf("failed to undo: %w", err)
	}
	return game, nil
}

// isEmptyHistory checks if the server refused an undo because the game has no moves.
func isEmptyHistory(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) &&
		statusErr.StatusCode == http.StatusConflict &&
		strings.Contains(statusErr.Message, othello.ErrEmptyHistory.Error())
}
