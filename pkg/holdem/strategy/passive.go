package strategy

import (
	"context"

	"pokermaster-server/pkg/holdem/action"
)

// Passive never bets or raises. It checks when it can, calls when it must and folds otherwise.
type Passive struct{}

// Act implements Strategy
func (Passive) Act(ctx context.Context, t Turn) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	for _, a := range []action.Action{action.Check, action.Continue, action.Call, action.Fold} {
		if t.Allowed.Has(a) {
			return Decision{Action: a}, nil
		}
	}

	return Decision{}, ErrNoLegalAction
}
