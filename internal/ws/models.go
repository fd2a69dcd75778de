package ws

import (
	"encoding/json"

	"github.com/lk16/reversi/internal/api"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

// Outgoing answers the Incoming message with the same ID. Exactly one of Data and Error is set.
type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type GameRequest struct {
	GameID string `json:"game_id" validate:"required"`
}

type ChooseCellRequest struct {
	GameID string `json:"game_id" validate:"required"`
	api.MoveRequest
}
