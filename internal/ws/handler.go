package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/reversi/internal/api"
	"github.com/lk16/reversi/internal/game"
	"github.com/lk16/reversi/internal/repository"
)

const (
	requestTimeout = 2 * time.Second
)

// Handler serves one websocket connection. A connection can play any number of games.
type Handler struct {
	sessions repository.SessionRepository
	policy   game.TurnPolicy
	ws       *websocket.Conn
}

// NewHandler creates a new Handler. Games created without a policy use the given one.
func NewHandler(ws *websocket.Conn, sessions repository.SessionRepository, policy game.TurnPolicy) *Handler {
	return &Handler{sessions: sessions, policy: policy, ws: ws}
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

// handleMessage answers a message. Returned errors are protocol violations that end the connection,
// while problems with the requested game are reported in the Outgoing message.
func (h *Handler) handleMessage(ctx context.Context, req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	var (
		data any
		err  error
	)

	switch req.Event {
	case "new_game":
		data, err = h.handleNewGame(ctx, req.Data)
	case "get_state":
		data, err = h.handleGetState(ctx, req.Data)
	case "choose_cell":
		data, err = h.handleChooseCell(ctx, req.Data)
	case "reset":
		data, err = h.handleReset(ctx, req.Data)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return nil, fmt.Errorf("ws %s request unmarshal error: %w", req.Event, err)
	}

	if err != nil {
		return &Outgoing{ID: req.ID, Error: err.Error()}, nil
	}

	return &Outgoing{ID: req.ID, Data: data}, nil
}

// Handle handles the websocket connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		respData, err := h.handleMessage(ctx, req)
		cancel()

		if err != nil {
			return fmt.Errorf("ws handle error: %w", err)
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

// decode unmarshals and validates the data of an event. Missing data is treated as an empty object.
func decode(data json.RawMessage, target any) error {
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, target); err != nil {
			return err
		}
	}
	return api.Validate(target)
}

func (h *Handler) handleNewGame(ctx context.Context, data json.RawMessage) (*api.GameState, error) {
	var reqData api.NewGameRequest
	if err := decode(data, &reqData); err != nil {
		return nil, err
	}

	policy, err := reqData.TurnPolicy(h.policy)
	if err != nil {
		return nil, err
	}

	session, err := h.sessions.Create(ctx, policy)
	if err != nil {
		return nil, err
	}

	return gameState(session, nil)
}

func (h *Handler) handleGetState(ctx context.Context, data json.RawMessage) (*api.GameState, error) {
	var reqData GameRequest
	if err := decode(data, &reqData); err != nil {
		return nil, err
	}

	session, err := h.sessions.Get(ctx, reqData.GameID)
	if err != nil {
		return nil, err
	}

	return gameState(session, nil)
}

func (h *Handler) handleChooseCell(ctx context.Context, data json.RawMessage) (*api.GameState, error) {
	var reqData ChooseCellRequest
	if err := decode(data, &reqData); err != nil {
		return nil, err
	}

	var result game.StatusMessage
	session, err := h.sessions.Update(ctx, reqData.GameID, func(controller *game.Controller) error {
		result = controller.OnCellChosen(*reqData.Row, *reqData.Col)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return gameState(session, &result)
}

func (h *Handler) handleReset(ctx context.Context, data json.RawMessage) (*api.GameState, error) {
	var reqData GameRequest
	if err := decode(data, &reqData); err != nil {
		return nil, err
	}

	session, err := h.sessions.Update(ctx, reqData.GameID, func(controller *game.Controller) error {
		controller.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return gameState(session, nil)
}

func gameState(session repository.Session, result *game.StatusMessage) (*api.GameState, error) {
	controller, err := session.Controller()
	if err != nil {
		return nil, err
	}

	state := api.NewGameState(session.ID, controller)
	if result != nil {
		state = state.WithResult(*result)
	}

	return &state, nil
}
