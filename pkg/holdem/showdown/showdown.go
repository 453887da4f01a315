// Package showdown scores hole cards against a complete board and pays out the pot
package showdown

import (
	"errors"
	"fmt"
	"sort"

	"github.com/paulhankin/poker"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/player"
)

// ErrIncompleteBoard is returned when a showdown is attempted without five community cards
var ErrIncompleteBoard = errors.New("showdown requires five community cards")

// ErrNoContenders is returned when nobody holds cards at showdown
var ErrNoContenders = errors.New("no player holds cards")

// suits maps to the evaluator's suit numbering: clubs, diamonds, hearts, spades
var suits = map[deck.Suit]poker.Suit{
	deck.Clubs:    poker.Suit(0),
	deck.Diamonds: poker.Suit(1),
	deck.Hearts:   poker.Suit(2),
	deck.Spades:   poker.Suit(3),
}

// Result is a player's showing at showdown
type Result struct {
	Player      *player.Player
	Score       int16
	Description string
	Won         int
}

func toPokerCard(c *deck.Card) (poker.Card, error) {
	suit, ok := suits[c.Suit]
	if !ok {
		return 0, fmt.Errorf("unknown suit: %s", c.Suit)
	}

	return poker.MakeCard(suit, poker.Rank(c.AceLowRank()))
}

// Score evaluates the best five card hand from two hole cards and five board cards
// Higher scores are better.
func Score(hole []*deck.Card, board deck.Hand) (int16, string, error) {
	if len(board) != 5 {
		return 0, "", ErrIncompleteBoard
	}

	if len(hole) != 2 {
		return 0, "", player.ErrInvalidCardCount
	}

	var cards [7]poker.Card
	for i, c := range append(board.Cards(), hole...) {
		pc, err := toPokerCard(c)
		if err != nil {
			return 0, "", err
		}

		cards[i] = pc
	}

	desc, err := poker.Describe(cards[:])
	if err != nil {
		return 0, "", err
	}

	return poker.Eval7(&cards), desc, nil
}

// Award pays the pot to the best hand among players still holding cards
// Ties split the pot; odd chips go to the earliest tied players in seat order. If only one
// player holds cards, they take the pot without a showdown and the board may be incomplete.
func Award(pot int, players []*player.Player, board deck.Hand) ([]*Result, error) {
	contenders := make([]*Result, 0, len(players))
	for _, p := range players {
		if p.HasCards() {
			contenders = append(contenders, &Result{Player: p})
		}
	}

	if len(contenders) == 0 {
		return nil, ErrNoContenders
	}

	if len(contenders) == 1 {
		contenders[0].Won = pot
		return contenders, contenders[0].Player.Win(pot)
	}

	for _, r := range contenders {
		score, desc, err := Score(r.Player.Cards(), board)
		if err != nil {
			return nil, fmt.Errorf("could not score %s: %w", r.Player.Name(), err)
		}

		r.Score = score
		r.Description = desc
	}

	best := contenders[0].Score
	for _, r := range contenders[1:] {
		if r.Score > best {
			best = r.Score
		}
	}

	winners := make([]*Result, 0, len(contenders))
	for _, r := range contenders {
		if r.Score == best {
			winners = append(winners, r)
		}
	}

	share := pot / len(winners)
	odd := pot % len(winners)
	for i, r := range winners {
		r.Won = share
		if i < odd {
			r.Won++
		}

		if err := r.Player.Win(r.Won); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(contenders, func(i, j int) bool {
		return contenders[i].Score > contenders[j].Score
	})

	return contenders, nil
}
