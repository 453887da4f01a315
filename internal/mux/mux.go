package mux

import (
	"context"
	"net/http"

	gmux "github.com/gorilla/mux"

	"pokermaster-server/pkg/bankroll"
	"pokermaster-server/pkg/spectator"
)

type bankrollStore interface {
	GetByName(ctx context.Context, name string) (*bankroll.Bankroll, error)
}

type bankrollFunc func(ctx context.Context, name string) (*bankroll.Bankroll, error)

func (f bankrollFunc) GetByName(ctx context.Context, name string) (*bankroll.Bankroll, error) {
	return f(ctx, name)
}

// Mux handles HTTP requests
// Every player state it serves comes from the spectator feed, so hole cards are never exposed.
type Mux struct {
	*gmux.Router
	version   string
	feed      *spectator.Feed
	bankrolls bankrollStore
}

// NewMux returns a new HTTP mux
func NewMux(version string, feed *spectator.Feed) *Mux {
	this := &Mux{
		Router:    gmux.NewRouter(),
		version:   version,
		feed:      feed,
		bankrolls: bankrollFunc(bankroll.GetByName),
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodGet).Path("/player").Handler(this.getPlayer())
	r.Methods(http.MethodGet).Path("/player/{name}").Handler(this.getPlayerName())
	r.Methods(http.MethodGet).Path("/player/{name}/ws").Handler(this.getPlayerNameWS())
	r.Methods(http.MethodGet).Path("/bankroll/{name}").Handler(this.getBankrollName())

	return this
}
