// Package player models a single seat's betting state in Texas Hold'em: cash, hole cards,
// the current round's bet and the last recorded action.
//
// A Player is not safe for concurrent use. The orchestrator driving a hand owns it and
// serializes access; observers receive snapshots from PublicClone instead.
package player

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
)

// holeCards is the number of private cards dealt to each player
const holeCards = 2

// ErrInvalidCardCount is returned when hole cards are assigned with a count other than two
var ErrInvalidCardCount = errors.New("invalid number of cards")

// ErrInsufficientCash is returned when a player is asked to pay more cash than they own
var ErrInsufficientCash = errors.New("player asked to pay more cash than they own")

// ErrEmptyName is returned when a player is created without a name
var ErrEmptyName = errors.New("player name cannot be empty")

// ErrNegativeCash is returned when a player is created with negative cash
var ErrNegativeCash = errors.New("player cash cannot be negative")

// ErrNegativeAmount is returned when a negative amount is bet, paid or won
var ErrNegativeAmount = errors.New("amount cannot be negative")

// Player represents an individual seat at a Texas Hold'em table
type Player struct {
	name string
	cash int
	hand deck.Hand

	hasCards bool
	bet      int
	action   action.Action

	logger logrus.FieldLogger
}

// New returns a player with an empty hand and no bet
// If logger is nil, the standard logrus logger is used
func New(logger logrus.FieldLogger, name string, cash int) (*Player, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if cash < 0 {
		return nil, ErrNegativeCash
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	p := &Player{
		name:   name,
		cash:   cash,
		hand:   make(deck.Hand, 0, holeCards),
		logger: logger.WithField("player", name),
	}

	p.ResetHand()
	return p, nil
}

// ResetHand prepares the player for another hand
func (p *Player) ResetHand() {
	p.hasCards = false
	p.hand.RemoveAllCards()
	p.ResetBet()
}

// ResetBet prepares the player for another betting round
// A player who holds cards but has no cash left stays marked as all-in for the rest of the hand.
func (p *Player) ResetBet() {
	p.bet = 0
	if p.hasCards && p.cash == 0 {
		p.action = action.AllIn
	} else {
		p.action = action.None
	}
}

// SetCards assigns the hole cards
// A nil or empty slice clears the hand. Any count other than two returns ErrInvalidCardCount
// and leaves the player untouched.
func (p *Player) SetCards(cards []*deck.Card) error {
	if len(cards) == 0 {
		p.hand.RemoveAllCards()
		p.hasCards = false
		return nil
	}

	if len(cards) != holeCards {
		return fmt.Errorf("%w: got %d, want %d", ErrInvalidCardCount, len(cards), holeCards)
	}

	p.hand.RemoveAllCards()
	p.hand.AddCards(cards)
	p.hasCards = true

	// the cards themselves are private and are never logged
	p.logger.Debug("hole cards assigned")
	return nil
}

// HasCards returns true if the hole cards are dealt
func (p *Player) HasCards() bool {
	return p.hasCards
}

// IsAllIn returns true if the player holds cards and has no cash left
// This is always computed from the live state. Action() may report action.AllIn only as of the
// last ResetBet, so callers that need to know whether the player is all-in now must use this.
func (p *Player) IsAllIn() bool {
	return p.hasCards && p.cash == 0
}

// Cards returns a copy of the hole cards
// These are private and must only be shown to the owning player or at showdown.
func (p *Player) Cards() []*deck.Card {
	return p.hand.Cards()
}

// Hand returns a copy of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Cash returns the player's current amount of cash
func (p *Player) Cash() int {
	return p.cash
}

// Bet returns the amount contributed in the current betting round
func (p *Player) Bet() int {
	return p.bet
}

// SetBet sets the player's current bet
func (p *Player) SetBet(bet int) error {
	if bet < 0 {
		return ErrNegativeAmount
	}

	p.bet = bet
	return nil
}

// Action returns the player's most recent action, or action.None
func (p *Player) Action() action.Action {
	return p.action
}

// SetAction records the player's most recent action
func (p *Player) SetAction(a action.Action) {
	p.action = a
}

// PostSmallBlind posts the small blind and returns the amount actually posted
func (p *Player) PostSmallBlind(blind int) int {
	return p.postBlind(action.SmallBlind, blind)
}

// PostBigBlind posts the big blind and returns the amount actually posted
func (p *Player) PostBigBlind(blind int) int {
	return p.postBlind(action.BigBlind, blind)
}

// postBlind caps the blind at the player's cash, so a short stack posts what it has
func (p *Player) postBlind(a action.Action, blind int) int {
	if blind < 0 {
		blind = 0
	}

	if blind > p.cash {
		p.logger.WithFields(logrus.Fields{
			"blind": blind,
			"cash":  p.cash,
		}).Debug("short stack posting partial blind")

		blind = p.cash
	}

	p.action = a
	p.cash -= blind
	p.bet += blind

	return blind
}

// PayCash removes cash from the player
// If amount exceeds the player's cash, ErrInsufficientCash is returned and cash is unchanged.
func (p *Player) PayCash(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	if amount > p.cash {
		return fmt.Errorf("%w: asked for %d, has %d", ErrInsufficientCash, amount, p.cash)
	}

	p.cash -= amount
	return nil
}

// Win adds the amount won to the player's cash
func (p *Player) Win(amount int) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	p.cash += amount
	return nil
}

// PublicClone returns a copy of the player with only public information.
// The clone reports whether cards are held, but its hand is always empty.
func (p *Player) PublicClone() *Player {
	clone := &Player{
		name:     p.name,
		cash:     p.cash,
		hand:     make(deck.Hand, 0, holeCards),
		hasCards: p.hasCards,
		bet:      p.bet,
		action:   p.action,
		logger:   p.logger,
	}

	return clone
}

func (p *Player) String() string {
	return p.name
}
