package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/othello/internal/models"
	"github.com/lk16/othello/internal/play"
)

const (
	eventTimeout = 10 * time.Second
)

type Handler struct {
	service *play.Service
	ws      *websocket.Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws *websocket.Conn, service *play.Service) *Handler {
	return &Handler{service: service, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

// Handle handles the websocket connection until it is closed.
// Failing events are answered with an error and do not close the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			if websocket.IsCloseError(errors.Unwrap(err), websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}

		outgoing := h.handleMessage(req)

		if err = h.writeMessage(outgoing); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleMessage(req *Incoming) *Outgoing {
	ctx, cancel := context.WithTimeout(context.Background(), eventTimeout)
	defer cancel()

	data, err := h.dispatch(ctx, req)
	if err != nil {
		slog.Debug("ws event failed", "event", req.Event, "error", err)
		return &Outgoing{ID: req.ID, Error: err.Error()}
	}

	return &Outgoing{ID: req.ID, Data: data}
}

func (h *Handler) dispatch(ctx context.Context, req *Incoming) (any, error) {
	switch req.Event {
	case "":
		return nil, errors.New("event field is either empty or missing")
	case "new_game":
		var reqData models.CreateGameRequest
		if err := unmarshalData(req.Data, &reqData); err != nil {
			return nil, err
		}
		return h.service.CreateGame(ctx, reqData)
	case "state":
		return h.handleGameRequest(ctx, req, h.service.GetGame)
	case "undo":
		return h.handleGameRequest(ctx, req, h.service.Undo)
	case "bot_move":
		var reqData GameRequest
		if err := unmarshalData(req.Data, &reqData); err != nil {
			return nil, err
		}
		return h.service.BotMove(ctx, reqData.GameID)
	case "play":
		var reqData PlayRequest
		if err := unmarshalData(req.Data, &reqData); err != nil {
			return nil, err
		}
		return h.service.PlayMove(ctx, reqData.GameID, models.MoveRequest{Row: reqData.Row, Col: reqData.Col})
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

func (h *Handler) handleGameRequest(
	ctx context.Context,
	req *Incoming,
	handle func(context.Context, string) (models.GameResponse, error),
) (any, error) {
	var reqData GameRequest
	if err := unmarshalData(req.Data, &reqData); err != nil {
		return nil, err
	}
	return handle(ctx, reqData.GameID)
}

// unmarshalData decodes event data. Missing data leaves v unchanged.
func unmarshalData(data json.RawMessage, v any) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("ws event data unmarshal error: %w", err)
	}
	return nil
}
