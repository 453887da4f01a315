// Package spectator exposes public snapshots of players to observers.
// Only PublicClone snapshots ever enter a Feed, so nothing read from it can reveal hole cards.
package spectator

import (
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"pokermaster-server/pkg/holdem/player"
)

// ErrPlayerNotFound is returned when no snapshot exists for the player
var ErrPlayerNotFound = errors.New("player not found")

// subscriberBuffer is how many updates a subscriber can fall behind before updates are dropped
const subscriberBuffer = 16

// Subscription receives snapshots published after it was created
type Subscription struct {
	ID uuid.UUID
	C  <-chan *player.Player

	name string
	c    chan *player.Player
}

// Feed holds the latest public snapshot of each player and fans updates out to subscribers
type Feed struct {
	logger logrus.FieldLogger

	mu          sync.RWMutex
	players     map[string]*player.Player
	order       []string
	subscribers map[uuid.UUID]*Subscription
}

// NewFeed returns an empty feed
func NewFeed(logger logrus.FieldLogger) *Feed {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Feed{
		logger:      logger,
		players:     make(map[string]*player.Player),
		subscribers: make(map[uuid.UUID]*Subscription),
	}
}

// Publish stores a public snapshot of p and sends it to subscribers
// Publish must be called from the goroutine that owns p.
func (f *Feed) Publish(p *player.Player) {
	snap := p.PublicClone()
	name := snap.Name()

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.players[name]; !ok {
		f.order = append(f.order, name)
	}
	f.players[name] = snap

	for _, sub := range f.subscribers {
		if sub.name != "" && sub.name != name {
			continue
		}

		select {
		case sub.c <- snap.PublicClone():
		default:
			f.logger.WithFields(logrus.Fields{
				"subscriber": sub.ID,
				"player":     name,
			}).Warn("subscriber is behind, dropping update")
		}
	}
}

// Remove drops the player from the feed
func (f *Feed) Remove(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.players[name]; !ok {
		return
	}

	delete(f.players, name)
	for i, n := range f.order {
		if n == name {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

// Get returns a copy of the latest snapshot of the player
func (f *Feed) Get(name string) (*player.Player, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap, ok := f.players[name]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return snap.PublicClone(), nil
}

// List returns copies of the latest snapshots, in the order players were first published
func (f *Feed) List() []*player.Player {
	f.mu.RLock()
	defer f.mu.RUnlock()

	players := make([]*player.Player, 0, len(f.order))
	for _, name := range f.order {
		players = append(players, f.players[name].PublicClone())
	}

	return players
}

// Subscribe returns a subscription to updates for the named player, or for every player if name is empty
func (f *Feed) Subscribe(name string) *Subscription {
	c := make(chan *player.Player, subscriberBuffer)
	sub := &Subscription{
		ID:   uuid.New(),
		C:    c,
		name: name,
		c:    c,
	}

	f.mu.Lock()
	f.subscribers[sub.ID] = sub
	f.mu.Unlock()

	return sub
}

// Unsubscribe stops updates and closes the subscription's channel
func (f *Feed) Unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.subscribers[sub.ID]; !ok {
		return
	}

	delete(f.subscribers, sub.ID)
	close(sub.c)
}

// SubscriberCount returns the number of active subscriptions
func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.subscribers)
}

// Names returns the names of the players in the feed, sorted
func (f *Feed) Names() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, len(f.order))
	copy(names, f.order)
	sort.Strings(names)
	return names
}
