package player

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
	"pokermaster-server/pkg/snapshot"
)

func newTestPlayer(t *testing.T, name string, cash int) *Player {
	t.Helper()
	p, err := New(logrus.StandardLogger(), name, cash)
	if err != nil {
		t.Fatal(err)
	}

	return p
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	p, err := New(nil, "Alice", 1000)
	a.NoError(err)
	a.Equal("Alice", p.Name())
	a.Equal("Alice", p.String())
	a.Equal(1000, p.Cash())
	a.Equal(0, p.Bet())
	a.Equal(action.None, p.Action())
	a.False(p.HasCards())
	a.False(p.IsAllIn())
	a.Empty(p.Cards())

	p, err = New(nil, "", 1000)
	a.Equal(ErrEmptyName, err)
	a.Nil(p)

	p, err = New(nil, "Bob", -1)
	a.Equal(ErrNegativeCash, err)
	a.Nil(p)

	p, err = New(nil, "Broke", 0)
	a.NoError(err)
	a.False(p.IsAllIn(), "no cards, not all-in")
}

func TestPlayer_SetCards(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)

	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))
	a.True(p.HasCards())
	a.Equal("14s,13h", deck.CardsToString(p.Cards()), "order is preserved")
	a.Equal("14s,13h", p.Hand().String())

	// replacing cards does not accumulate
	a.NoError(p.SetCards(deck.CardsFromString("2c,3d")))
	a.Equal("2c,3d", deck.CardsToString(p.Cards()))

	a.NoError(p.SetCards(nil))
	a.False(p.HasCards())
	a.Empty(p.Cards())

	a.NoError(p.SetCards(deck.CardsFromString("2c,3d")))
	a.NoError(p.SetCards([]*deck.Card{}))
	a.False(p.HasCards())
	a.Empty(p.Cards())
}

func TestPlayer_SetCards_invalidCount(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))

	for _, cards := range []string{"2c", "2c,3c,4c", "2c,3c,4c,5c,6c"} {
		err := p.SetCards(deck.CardsFromString(cards))
		a.True(errors.Is(err, ErrInvalidCardCount), cards)

		// failed assignment leaves prior state unchanged
		a.True(p.HasCards())
		a.Equal("14s,13h", deck.CardsToString(p.Cards()))
	}

	a.EqualError(p.SetCards(deck.CardsFromString("2c,3c,4c")), "invalid number of cards: got 3, want 2")
}

func TestPlayer_SetCards_doesNotLogCards(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	p, err := New(logger, "Alice", 1000)
	a.NoError(err)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))

	a.Len(hook.AllEntries(), 1)
	entry := hook.LastEntry()
	a.Equal("hole cards assigned", entry.Message)
	a.Equal("Alice", entry.Data["player"])
	for _, v := range entry.Data {
		a.NotContains(v, "14s")
	}
}

func TestPlayer_CardsAreCopies(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)
	cards := deck.CardsFromString("14s,13h")
	a.NoError(p.SetCards(cards))

	cards[0] = deck.CardFromString("2c")
	a.Equal("14s,13h", deck.CardsToString(p.Cards()))

	out := p.Cards()
	out[1] = deck.CardFromString("3c")
	a.Equal("14s,13h", deck.CardsToString(p.Cards()))

	hand := p.Hand()
	hand.AddCard(deck.CardFromString("4c"))
	a.Len(p.Cards(), 2)
}

func TestPlayer_ResetHand(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))
	p.PostBigBlind(20)
	a.NoError(p.PayCash(80))
	a.True(p.IsAllIn())

	p.ResetHand()
	a.False(p.HasCards())
	a.Empty(p.Cards())
	a.Equal(0, p.Bet())
	a.Equal(action.None, p.Action(), "all-in marker never fires when a hand resets")
	a.False(p.IsAllIn())
	a.Equal(0, p.Cash())
}

func TestPlayer_ResetBet(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))

	a.NoError(p.SetBet(40))
	p.SetAction(action.Raise)
	p.ResetBet()
	a.Equal(0, p.Bet())
	a.Equal(action.None, p.Action())

	a.NoError(p.PayCash(100))
	p.SetAction(action.Call)
	p.ResetBet()
	a.Equal(0, p.Bet())
	a.Equal(action.AllIn, p.Action())

	// stays all-in for every subsequent round
	p.SetAction(action.Check)
	p.ResetBet()
	a.Equal(action.AllIn, p.Action())
}

func TestPlayer_IsAllIn_ignoresStoredAction(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))

	p.SetAction(action.AllIn)
	a.False(p.IsAllIn())

	a.NoError(p.PayCash(100))
	p.SetAction(action.Call)
	a.True(p.IsAllIn(), "live state wins over the stored action")

	a.NoError(p.Win(50))
	a.False(p.IsAllIn())
}

func TestPlayer_Blinds(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)

	a.Equal(10, p.PostSmallBlind(10))
	a.Equal(990, p.Cash())
	a.Equal(10, p.Bet())
	a.Equal(action.SmallBlind, p.Action())

	a.Equal(20, p.PostBigBlind(20))
	a.Equal(970, p.Cash())
	a.Equal(30, p.Bet())
	a.Equal(action.BigBlind, p.Action())
}

func TestPlayer_Blinds_shortStack(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Shorty", 15)
	a.NoError(p.SetCards(deck.CardsFromString("7c,2d")))

	a.Equal(15, p.PostBigBlind(20))
	a.Equal(0, p.Cash())
	a.Equal(15, p.Bet())
	a.Equal(action.BigBlind, p.Action())
	a.True(p.IsAllIn())

	a.Equal(0, p.PostSmallBlind(10))
	a.Equal(0, p.Cash())
	a.Equal(15, p.Bet())

	p2 := newTestPlayer(t, "Negative", 15)
	a.Equal(0, p2.PostSmallBlind(-5))
	a.Equal(15, p2.Cash())
}

func TestPlayer_PayCash(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)

	err := p.PayCash(101)
	a.True(errors.Is(err, ErrInsufficientCash))
	a.EqualError(err, "player asked to pay more cash than they own: asked for 101, has 100")
	a.Equal(100, p.Cash())

	a.NoError(p.PayCash(40))
	a.Equal(60, p.Cash())

	a.NoError(p.PayCash(0))
	a.Equal(60, p.Cash())

	a.Equal(ErrNegativeAmount, p.PayCash(-1))
	a.Equal(60, p.Cash())

	a.NoError(p.PayCash(60))
	a.Equal(0, p.Cash())
}

func TestPlayer_Win(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)

	a.NoError(p.Win(250))
	a.Equal(350, p.Cash())

	a.NoError(p.Win(0))
	a.Equal(350, p.Cash())

	a.Equal(ErrNegativeAmount, p.Win(-1))
	a.Equal(350, p.Cash())
}

func TestPlayer_SetBet(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 100)

	a.NoError(p.SetBet(25))
	a.Equal(25, p.Bet())
	a.Equal(100, p.Cash(), "setting the bet does not move cash")

	a.Equal(ErrNegativeAmount, p.SetBet(-1))
	a.Equal(25, p.Bet())
}

func TestPlayer_PublicClone(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13h")))
	p.PostSmallBlind(10)

	clone := p.PublicClone()
	a.Equal("Alice", clone.Name())
	a.Equal(990, clone.Cash())
	a.Equal(10, clone.Bet())
	a.Equal(action.SmallBlind, clone.Action())
	a.True(clone.HasCards())
	a.Empty(clone.Cards())
	a.Equal(0, clone.Hand().Len())

	// the clone is a snapshot, not a live view
	a.NoError(p.PayCash(990))
	p.SetAction(action.AllIn)
	a.Equal(990, clone.Cash())
	a.Equal(action.SmallBlind, clone.Action())
	a.False(clone.IsAllIn())
	a.True(p.IsAllIn())

	// mutating the clone does not touch the original
	a.NoError(clone.Win(10))
	a.Equal(0, p.Cash())
	a.Equal("14s,13h", deck.CardsToString(p.Cards()))
}

func TestPlayer_PublicClone_withoutCards(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Bob", 500)

	clone := p.PublicClone()
	a.False(clone.HasCards())
	a.Equal(500, clone.Cash())
	a.Equal(action.None, clone.Action())
}

func TestPlayer_View(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)
	a.NoError(p.SetCards(deck.CardsFromString("14s,13s")))
	p.PostSmallBlind(10)

	a.Nil(p.View(false).Cards)
	a.Equal("14s,13s", p.View(true).Cards.String())
	a.Nil(p.PublicClone().View(true).Cards, "nothing to reveal on a public clone")

	snapshot.ValidateSnapshot(t, p.View(false), 0)
	snapshot.ValidateSnapshot(t, p.View(true), 0)
}

// Alice posts the small blind, then pays the rest of her stack. Without hole cards the
// all-in marker does not apply when the betting round resets.
func TestPlayer_scenario(t *testing.T) {
	a := assert.New(t)
	p := newTestPlayer(t, "Alice", 1000)

	p.PostSmallBlind(10)
	a.Equal(990, p.Cash())
	a.Equal(10, p.Bet())
	a.Equal(action.SmallBlind, p.Action())

	a.NoError(p.PayCash(990))
	a.Equal(0, p.Cash())

	p.ResetBet()
	a.False(p.HasCards())
	a.Equal(action.None, p.Action())
	a.Equal(0, p.Bet())
}
