package game

import (
	"fmt"

	"github.com/lk16/reversi/internal/models"
)

// Status indicates whether moves are still accepted.
type Status int

const (
	InProgress Status = iota
	Over
)

// Outcome is the result of a finished game.
type Outcome int

const (
	NoOutcome Outcome = iota
	BlackWins
	WhiteWins
	Tie
)

// OutcomeFromScores decides the winner by disc count.
func OutcomeFromScores(black, white int) Outcome {
	switch {
	case black > white:
		return BlackWins
	case white > black:
		return WhiteWins
	default:
		return Tie
	}
}

// MessageKind tells which fields of a StatusMessage are set.
type MessageKind int

const (
	MessageTurn MessageKind = iota
	MessageRejected
	MessagePassed
	MessageFinished
)

// RejectReason explains why a chosen cell was not played.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonOccupied
	ReasonNoCaptures
	ReasonGameOver
)

// StatusMessage describes the latest state change for display.
type StatusMessage struct {
	Kind MessageKind `json:"kind"`

	// Player is set for MessageTurn.
	Player models.Color `json:"player,omitempty"`

	// Reason is set for MessageRejected.
	Reason RejectReason `json:"reason,omitempty"`

	// From and To are set for MessagePassed. From has no moves, To plays next.
	From models.Color `json:"from,omitempty"`
	To   models.Color `json:"to,omitempty"`

	// Outcome is set for MessageFinished.
	Outcome Outcome `json:"outcome,omitempty"`
}

// TurnMessage announces whose turn it is.
func TurnMessage(player models.Color) StatusMessage {
	return StatusMessage{Kind: MessageTurn, Player: player}
}

// RejectedMessage reports a move that was not played.
func RejectedMessage(reason RejectReason) StatusMessage {
	return StatusMessage{Kind: MessageRejected, Reason: reason}
}

// PassedMessage reports that from has no moves and to plays next.
func PassedMessage(from, to models.Color) StatusMessage {
	return StatusMessage{Kind: MessagePassed, From: from, To: to}
}

// FinishedMessage reports the result of the game.
func FinishedMessage(outcome Outcome) StatusMessage {
	return StatusMessage{Kind: MessageFinished, Outcome: outcome}
}

// Text renders the message for a human.
func (m StatusMessage) Text() string {
	switch m.Kind {
	case MessageTurn:
		return m.Player.String() + "'s turn."
	case MessageRejected:
		return m.Reason.Text()
	case MessagePassed:
		return fmt.Sprintf("%s has no moves. %s's turn.", m.From, m.To)
	case MessageFinished:
		return m.Outcome.Text()
	default:
		return ""
	}
}

// Text renders the reason for a human.
func (r RejectReason) Text() string {
	switch r {
	case ReasonOccupied:
		return "Cell occupied. Try another move."
	case ReasonNoCaptures:
		return "Invalid move. Try again."
	case ReasonGameOver:
		return "Game over."
	default:
		return ""
	}
}

// Text renders the outcome for a human.
func (o Outcome) Text() string {
	switch o {
	case BlackWins:
		return "Black wins!"
	case WhiteWins:
		return "White wins!"
	case Tie:
		return "It's a tie!"
	default:
		return ""
	}
}

var (
	statusNames       = []string{"in_progress", "over"}
	outcomeNames      = []string{"none", "black_wins", "white_wins", "tie"}
	messageKindNames  = []string{"turn", "rejected", "passed", "finished"}
	rejectReasonNames = []string{"none", "occupied", "no_captures", "game_over"}
)

// marshalName looks up the name of an enum value.
func marshalName(names []string, value int, typeName string) ([]byte, error) {
	if value < 0 || value >= len(names) {
		return nil, fmt.Errorf("invalid %s: %d", typeName, value)
	}
	return []byte(names[value]), nil
}

// unmarshalName looks up the enum value of a name.
func unmarshalName(names []string, text []byte, typeName string) (int, error) {
	for i, name := range names {
		if name == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s: %q", typeName, text)
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return marshalName(statusNames, int(s), "status")
}

// UnmarshalText decodes the output of MarshalText.
func (s *Status) UnmarshalText(text []byte) error {
	value, err := unmarshalName(statusNames, text, "status")
	*s = Status(value)
	return err
}

// MarshalText encodes the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return marshalName(outcomeNames, int(o), "outcome")
}

// UnmarshalText decodes the output of MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	value, err := unmarshalName(outcomeNames, text, "outcome")
	*o = Outcome(value)
	return err
}

// MarshalText encodes the message kind by name.
func (k MessageKind) MarshalText() ([]byte, error) {
	return marshalName(messageKindNames, int(k), "message kind")
}

// UnmarshalText decodes the output of MarshalText.
func (k *MessageKind) UnmarshalText(text []byte) error {
	value, err := unmarshalName(messageKindNames, text, "message kind")
	*k = MessageKind(value)
	return err
}

// MarshalText encodes the reject reason by name.
func (r RejectReason) MarshalText() ([]byte, error) {
	return marshalName(rejectReasonNames, int(r), "reject reason")
}

// UnmarshalText decodes the output of MarshalText.
func (r *RejectReason) UnmarshalText(text []byte) error {
	value, err := unmarshalName(rejectReasonNames, text, "reject reason")
	*r = RejectReason(value)
	return err
}
