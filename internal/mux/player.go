package mux

import (
	"net/http"

	gmux "github.com/gorilla/mux"

	"pokermaster-server/pkg/holdem/player"
)

func (m *Mux) getPlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		players := m.feed.List()
		views := make([]*player.View, 0, rows)
		for i := start; i < len(players) && len(views) < rows; i++ {
			views = append(views, players[i].View(false))
		}

		writeJSON(w, http.StatusOK, views)
	}
}

func (m *Mux) getPlayerName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := m.feed.Get(gmux.Vars(r)["name"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, p.View(false))
	}
}

func (m *Mux) getBankrollName() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := m.bankrolls.GetByName(r.Context(), gmux.Vars(r)["name"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, b)
	}
}
