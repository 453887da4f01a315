// Package dealer runs hands of no-limit Texas Hold'em between seated players
package dealer

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokermaster-server/internal/rng"
	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/player"
	"pokermaster-server/pkg/holdem/showdown"
	"pokermaster-server/pkg/holdem/strategy"
)

// ErrNotEnoughPlayers is returned when fewer than two seated players have cash
var ErrNotEnoughPlayers = errors.New("there must be at least two players with cash")

// Seat pairs a player with the strategy that decides for them
type Seat struct {
	Player   *player.Player
	Strategy strategy.Strategy
}

// Publisher receives player state after every change, e.g., a spectator feed
type Publisher interface {
	Publish(p *player.Player)
}

type nopPublisher struct{}

func (nopPublisher) Publish(*player.Player) {}

// Options configures the blinds
type Options struct {
	SmallBlind int
	BigBlind   int
	// ShowBoard controls whether strategies are given the community cards
	ShowBoard bool
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		SmallBlind: 10,
		BigBlind:   20,
		ShowBoard:  true,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	return nil
}

// Dealer deals hands at a table
type Dealer struct {
	logger    logrus.FieldLogger
	options   Options
	seats     []*Seat
	gen       rng.Generator
	publisher Publisher
	button    int
}

// Pot is the main pot or a side pot and who won it
type Pot struct {
	Amount  int
	Results []*showdown.Result
}

// HandResult describes how a hand finished
type HandResult struct {
	Pot    int
	Board  deck.Hand
	Street Street
	// Pots is the main pot followed by any side pots
	Pots []*Pot
}

// Winnings returns how much each player won, keyed by name
func (r *HandResult) Winnings() map[string]int {
	won := make(map[string]int)
	for _, pot := range r.Pots {
		for _, res := range pot.Results {
			if res.Won > 0 {
				won[res.Player.Name()] += res.Won
			}
		}
	}

	return won
}

// New returns a dealer for the seats
// If publisher is nil, updates are discarded.
func New(logger logrus.FieldLogger, seats []*Seat, gen rng.Generator, publisher Publisher, opts Options) (*Dealer, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	for i, s := range seats {
		if s == nil || s.Player == nil || s.Strategy == nil {
			return nil, fmt.Errorf("seat %d is missing a player or strategy", i)
		}
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if publisher == nil {
		publisher = nopPublisher{}
	}

	return &Dealer{
		logger:    logger,
		options:   opts,
		seats:     seats,
		gen:       gen,
		publisher: publisher,
	}, nil
}

// Seats returns the seats at the table
func (d *Dealer) Seats() []*Seat {
	return d.seats
}

// PlayHand plays one full hand and moves the button
func (d *Dealer) PlayHand(ctx context.Context) (*HandResult, error) {
	for _, s := range d.seats {
		s.Player.ResetHand()
	}

	h, err := d.newHand()
	if err != nil {
		return nil, err
	}
	d.button = (d.button + 1) % len(d.seats)

	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	sb, bb, preFlopFirst, postFlopFirst := h.positions()
	h.collect(sb, h.seats[sb].Player.PostSmallBlind(d.options.SmallBlind))
	h.collect(bb, h.seats[bb].Player.PostBigBlind(d.options.BigBlind))
	h.currentBet = maxInt(h.seats[sb].Player.Bet(), h.seats[bb].Player.Bet())
	d.publishAll(h)

	street := StreetPreFlop
	for ; street <= StreetRiver; street++ {
		first := postFlopFirst
		if street == StreetPreFlop {
			first = preFlopFirst
		} else {
			if err := h.dealBoard(street.boardSize()); err != nil {
				return nil, err
			}

			h.newRoundSetup()
			d.publishAll(h)
		}

		if err := d.bettingRound(ctx, h, street, first); err != nil {
			return nil, err
		}

		if h.contenders() == 1 {
			break
		}
	}

	if street > StreetRiver {
		street = StreetRiver
	}

	// all-in players run out the board
	if h.contenders() > 1 {
		if err := h.dealBoard(StreetRiver.boardSize()); err != nil {
			return nil, err
		}
	}

	pots, err := h.award()
	if err != nil {
		return nil, err
	}

	result := &HandResult{
		Pot:    h.pot,
		Board:  h.board.Clone(),
		Street: street,
		Pots:   pots,
	}

	for name, won := range result.Winnings() {
		d.logger.WithField("player", name).Infof("won ${%d}", won)
	}

	d.publishAll(h)
	return result, nil
}

func (d *Dealer) newHand() (*hand, error) {
	n := len(d.seats)
	seats := make([]*Seat, 0, n)
	for i := 0; i < n; i++ {
		s := d.seats[(d.button+i)%n]
		if s.Player.Cash() > 0 {
			seats = append(seats, s)
		}
	}

	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	dk := deck.New()
	dk.Shuffle(d.gen)

	return &hand{
		seats:       seats,
		deck:        dk,
		board:       make(deck.Hand, 0, 5),
		contributed: make([]int, len(seats)),
	}, nil
}

func (d *Dealer) bettingRound(ctx context.Context, h *hand, street Street, first int) error {
	n := len(h.seats)
	pending := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if idx := (first + i) % n; h.canAct(idx) {
			pending = append(pending, idx)
		}
	}

	for len(pending) > 0 {
		if h.contenders() == 1 {
			return nil
		}

		idx := pending[0]
		pending = pending[1:]

		seat := h.seats[idx]
		p := seat.Player
		if !h.canAct(idx) {
			continue
		}

		// nobody left to bet against
		if p.Bet() >= h.currentBet && h.actors() == 1 {
			continue
		}

		var board deck.Hand
		if d.options.ShowBoard {
			board = h.board
		}

		turn := strategy.NewTurn(p, d.options.BigBlind, h.currentBet, h.allowedActions(p, d.options.BigBlind), board)
		decision, err := strategy.Ask(ctx, seat.Strategy, turn)
		if err != nil {
			return fmt.Errorf("%s could not act: %w", p.Name(), err)
		}

		amount, raised, err := h.apply(idx, decision)
		if err != nil {
			return err
		}

		d.logger.WithFields(logrus.Fields{
			"player": p.Name(),
			"street": street.String(),
		}).Info(p.Action().LogMessage(amount))
		d.publisher.Publish(p)

		if raised {
			pending = pending[:0]
			for i := 1; i < n; i++ {
				if j := (idx + i) % n; h.canAct(j) {
					pending = append(pending, j)
				}
			}
		}
	}

	return nil
}

func (d *Dealer) publishAll(h *hand) {
	for _, s := range h.seats {
		d.publisher.Publish(s.Player)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
