package game

import (
	"fmt"
	"strings"
)

// TurnPolicy decides who plays after a committed move.
type TurnPolicy int

const (
	// PolicyStandard hands the turn to the opponent whenever the opponent can move.
	// If only the mover can move, the opponent passes.
	PolicyStandard TurnPolicy = iota

	// PolicyLegacy keeps the turn with the mover as long as the mover can still move.
	// Only when the mover is stuck does the turn go to the opponent.
	// This reproduces the behaviour of the browser game this engine replaces.
	PolicyLegacy
)

var policyNames = []string{"standard", "legacy"}

// ParseTurnPolicy parses "standard" or "legacy", case insensitive.
func ParseTurnPolicy(s string) (TurnPolicy, error) {
	value, err := unmarshalName(policyNames, []byte(strings.ToLower(s)), "turn policy")
	if err != nil {
		return PolicyStandard, err
	}
	return TurnPolicy(value), nil
}

func (p TurnPolicy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("TurnPolicy(%d)", int(p))
	}
	return policyNames[p]
}

func (p TurnPolicy) MarshalText() ([]byte, error) {
	return marshalName(policyNames, int(p), "turn policy")
}

func (p *TurnPolicy) UnmarshalText(text []byte) error {
	value, err := unmarshalName(policyNames, text, "turn policy")
	*p = TurnPolicy(value)
	return err
}
