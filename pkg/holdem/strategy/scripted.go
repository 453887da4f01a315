package strategy

import (
	"context"
	"errors"
)

// ErrScriptExhausted is returned when a Scripted strategy runs out of decisions
var ErrScriptExhausted = errors.New("scripted strategy has no decisions left")

// Scripted replays a fixed list of decisions, in order
type Scripted struct {
	decisions []Decision
}

// NewScripted returns a strategy that will return the decisions in order
func NewScripted(decisions ...Decision) *Scripted {
	return &Scripted{decisions: decisions}
}

// Act implements Strategy
func (s *Scripted) Act(ctx context.Context, t Turn) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	if len(s.decisions) == 0 {
		return Decision{}, ErrScriptExhausted
	}

	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

// Remaining returns how many decisions are left
func (s *Scripted) Remaining() int {
	return len(s.decisions)
}
