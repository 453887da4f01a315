package dealer

import (
	"sort"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
	"pokermaster-server/pkg/holdem/player"
	"pokermaster-server/pkg/holdem/showdown"
	"pokermaster-server/pkg/holdem/strategy"
)

// Street is a betting round within a hand
type Street int

// street constants
const (
	StreetPreFlop Street = iota
	StreetFlop
	StreetTurn
	StreetRiver
)

func (s Street) String() string {
	switch s {
	case StreetPreFlop:
		return "pre-flop"
	case StreetFlop:
		return "flop"
	case StreetTurn:
		return "turn"
	case StreetRiver:
		return "river"
	}

	return "unknown"
}

func (s Street) boardSize() int {
	switch s {
	case StreetFlop:
		return 3
	case StreetTurn:
		return 4
	case StreetRiver:
		return 5
	}

	return 0
}

// hand is the state of a single hand; seats[0] has the button
type hand struct {
	seats      []*Seat
	deck       *deck.Deck
	board      deck.Hand
	pot        int
	currentBet int
	// contributed is what each seat put in the pot over the whole hand
	contributed []int
}

// positions returns the seat indexes of the small blind, the big blind and who acts first
// pre-flop and after the flop. Heads-up, the button posts the small blind.
func (h *hand) positions() (sb, bb, preFlopFirst, postFlopFirst int) {
	n := len(h.seats)
	if n == 2 {
		return 0, 1, 0, 1
	}

	return 1, 2, 3 % n, 1
}

func (h *hand) dealHoleCards() error {
	for _, s := range h.seats {
		cards, err := h.deck.DrawN(2)
		if err != nil {
			return err
		}

		if err := s.Player.SetCards(cards); err != nil {
			return err
		}
	}

	return nil
}

func (h *hand) dealBoard(size int) error {
	if n := size - len(h.board); n > 0 {
		cards, err := h.deck.DrawN(n)
		if err != nil {
			return err
		}

		h.board.AddCards(cards)
	}

	return nil
}

func (h *hand) newRoundSetup() {
	h.currentBet = 0
	for _, s := range h.seats {
		s.Player.ResetBet()
	}
}

// canAct is true for players still in the hand with cash behind
func (h *hand) canAct(idx int) bool {
	p := h.seats[idx].Player
	return p.HasCards() && !p.IsAllIn()
}

func (h *hand) actors() int {
	count := 0
	for i := range h.seats {
		if h.canAct(i) {
			count++
		}
	}

	return count
}

func (h *hand) contenders() int {
	count := 0
	for _, s := range h.seats {
		if s.Player.HasCards() {
			count++
		}
	}

	return count
}

func (h *hand) allowedActions(p *player.Player, minBet int) action.Set {
	allowed := action.NewSet(action.Fold)
	toCall := h.currentBet - p.Bet()
	canRaise := h.actors() > 1 && p.Cash()-maxInt(toCall, 0) >= minBet

	if toCall <= 0 {
		allowed[action.Check] = true
		if canRaise {
			if h.currentBet == 0 {
				allowed[action.Bet] = true
			} else {
				allowed[action.Raise] = true
			}
		}

		return allowed
	}

	allowed[action.Call] = true
	if canRaise {
		allowed[action.Raise] = true
	}

	return allowed
}

// apply carries out the decision and returns the amount put in and whether the bet went up
// For a bet or raise, the decision's amount is on top of what it takes to call.
func (h *hand) apply(idx int, d strategy.Decision) (int, bool, error) {
	p := h.seats[idx].Player
	switch d.Action {
	case action.Fold:
		if err := p.SetCards(nil); err != nil {
			return 0, false, err
		}

		p.SetAction(action.Fold)
		return 0, false, nil
	case action.Check:
		p.SetAction(action.Check)
		return 0, false, nil
	case action.Call:
		paid, err := h.pay(idx, h.currentBet-p.Bet())
		if err != nil {
			return 0, false, err
		}

		h.setAction(p, action.Call)
		return paid, false, nil
	case action.Bet, action.Raise:
		if _, err := h.pay(idx, h.currentBet-p.Bet()+d.Amount); err != nil {
			return 0, false, err
		}

		raised := p.Bet() > h.currentBet
		if raised {
			h.currentBet = p.Bet()
		}

		h.setAction(p, d.Action)
		return p.Bet(), raised, nil
	}

	return 0, false, strategy.ErrIllegalDecision
}

// pay moves up to amount from the player into the pot
func (h *hand) pay(idx int, amount int) (int, error) {
	p := h.seats[idx].Player
	if amount > p.Cash() {
		amount = p.Cash()
	}

	if amount < 0 {
		amount = 0
	}

	if err := p.PayCash(amount); err != nil {
		return 0, err
	}

	if err := p.SetBet(p.Bet() + amount); err != nil {
		return 0, err
	}

	h.collect(idx, amount)
	return amount, nil
}

// collect adds chips that already left the player's stack to the pot
func (h *hand) collect(idx int, amount int) {
	h.contributed[idx] += amount
	h.pot += amount
}

func (h *hand) setAction(p *player.Player, a action.Action) {
	if p.Cash() == 0 {
		a = action.AllIn
	}

	p.SetAction(a)
}

// pots splits the money into the main pot and side pots
// Each pot is capped at a contender's total contribution and only players who put in at
// least that much are eligible. Chips above the largest contribution go to the last pot.
func (h *hand) pots() []*sidePot {
	levels := make([]int, 0, len(h.seats))
	for i, s := range h.seats {
		if s.Player.HasCards() {
			levels = append(levels, h.contributed[i])
		}
	}

	sort.Ints(levels)

	pots := make([]*sidePot, 0, len(levels))
	prev := 0
	for n, level := range levels {
		if level == prev && n > 0 {
			continue
		}

		last := true
		for _, l := range levels[n+1:] {
			if l > level {
				last = false
				break
			}
		}

		pot := &sidePot{}
		for i, s := range h.seats {
			c := h.contributed[i]
			if last {
				pot.amount += c - minInt(c, prev)
			} else {
				pot.amount += minInt(c, level) - minInt(c, prev)
			}

			if s.Player.HasCards() && c >= level {
				pot.players = append(pot.players, s.Player)
			}
		}

		if pot.amount > 0 {
			pots = append(pots, pot)
		}

		prev = level
		if last {
			break
		}
	}

	return pots
}

type sidePot struct {
	amount  int
	players []*player.Player
}

func (h *hand) award() ([]*Pot, error) {
	sides := h.pots()
	pots := make([]*Pot, 0, len(sides))
	for _, sp := range sides {
		results, err := showdown.Award(sp.amount, sp.players, h.board)
		if err != nil {
			return nil, err
		}

		pots = append(pots, &Pot{
			Amount:  sp.amount,
			Results: results,
		})
	}

	return pots, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
