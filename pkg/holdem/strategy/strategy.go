// Package strategy defines how a seat decides what to do when it is on the clock.
// Strategies are injected into whatever drives the hand; a Player never owns one.
package strategy

import (
	"context"
	"errors"
	"fmt"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
	"pokermaster-server/pkg/holdem/player"
)

// ErrNoLegalAction is returned when a strategy is asked to act with nothing allowed
var ErrNoLegalAction = errors.New("no legal action available")

// ErrIllegalDecision is returned when a decision does not fit the turn
var ErrIllegalDecision = errors.New("illegal decision")

// Turn is what a strategy can see when it is asked to act
type Turn struct {
	// MinBet is the smallest amount allowed for a bet or raise
	MinBet int
	// Bet is the current bet on the table that must be matched to stay in
	Bet int
	// PlayerBet is what the acting player already put in this round
	PlayerBet int
	// Cash is the acting player's remaining cash
	Cash int

	Allowed action.Set

	// Board is nil when the strategy is not given the community cards
	Board deck.Hand
	Hole  []*deck.Card
}

// ToCall returns the amount needed to match the current bet
func (t Turn) ToCall() int {
	if diff := t.Bet - t.PlayerBet; diff > 0 {
		return diff
	}

	return 0
}

// SeesBoard returns true if the community cards were made visible
func (t Turn) SeesBoard() bool {
	return t.Board != nil
}

// Decision is what a strategy returns
// Amount is only meaningful for bets and raises
type Decision struct {
	Action action.Action `json:"action"`
	Amount int           `json:"amount"`
}

// Strategy picks an action for the acting player
type Strategy interface {
	Act(ctx context.Context, t Turn) (Decision, error)
}

// Presenter is implemented by strategies that can display the allowed actions, e.g., to a human
type Presenter interface {
	ShowActions(allowed action.Set)
}

// Func is an adapter to allow the use of ordinary functions as a Strategy
type Func func(ctx context.Context, t Turn) (Decision, error)

// Act calls f(ctx, t)
func (f Func) Act(ctx context.Context, t Turn) (Decision, error) {
	return f(ctx, t)
}

// NewTurn builds the turn for p
// Pass a nil board to withhold the community cards.
func NewTurn(p *player.Player, minBet, bet int, allowed action.Set, board deck.Hand) Turn {
	var b deck.Hand
	if board != nil {
		b = board.Clone()
	}

	return Turn{
		MinBet:    minBet,
		Bet:       bet,
		PlayerBet: p.Bet(),
		Cash:      p.Cash(),
		Allowed:   allowed,
		Board:     b,
		Hole:      p.Cards(),
	}
}

// Validate ensures the decision is allowed for the turn
func Validate(t Turn, d Decision) error {
	if !t.Allowed.Has(d.Action) {
		return fmt.Errorf("%w: %s is not allowed", ErrIllegalDecision, d.Action)
	}

	switch d.Action {
	case action.Bet, action.Raise:
		if d.Amount < t.MinBet {
			return fmt.Errorf("%w: %s of %d is below the minimum of %d", ErrIllegalDecision, d.Action, d.Amount, t.MinBet)
		}

		if d.Amount > t.Cash {
			return fmt.Errorf("%w: %s of %d exceeds cash of %d", ErrIllegalDecision, d.Action, d.Amount, t.Cash)
		}
	}

	return nil
}

// Ask shows the allowed actions if s is a Presenter, asks s to act, and validates the result
func Ask(ctx context.Context, s Strategy, t Turn) (Decision, error) {
	if len(t.Allowed.Sorted()) == 0 {
		return Decision{}, ErrNoLegalAction
	}

	if p, ok := s.(Presenter); ok {
		p.ShowActions(t.Allowed)
	}

	d, err := s.Act(ctx, t)
	if err != nil {
		return Decision{}, err
	}

	if err := Validate(t, d); err != nil {
		return Decision{}, err
	}

	return d, nil
}
