package player

import (
	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
)

// View is the JSON representation of a player
type View struct {
	Name     string        `json:"name"`
	Cash     int           `json:"cash"`
	Bet      int           `json:"currentBet"`
	Action   action.Action `json:"action"`
	HasCards bool          `json:"hasCards"`
	AllIn    bool          `json:"allIn"`
	Cards    deck.Hand     `json:"cards,omitempty"`
}

// View returns the JSON view of the player
// Hole cards are only included if reveal is true, e.g., for the owning player or at showdown.
func (p *Player) View(reveal bool) *View {
	var cards deck.Hand
	if reveal && p.hasCards && len(p.hand) > 0 {
		cards = p.hand.Clone()
	}

	return &View{
		Name:     p.name,
		Cash:     p.cash,
		Bet:      p.bet,
		Action:   p.action,
		HasCards: p.hasCards,
		AllIn:    p.IsAllIn(),
		Cards:    cards,
	}
}
