package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/dealer"
)

func printResult(result *dealer.HandResult, seats []*dealer.Seat) {
	if len(result.Board) > 0 {
		pterm.Info.Printfln("Board: %s", formatCards(result.Board))
	}

	won := result.Winnings()
	hands := make(map[string]string)
	for _, pot := range result.Pots {
		for _, r := range pot.Results {
			if r.Description != "" {
				hands[r.Player.Name()] = r.Description
			}
		}
	}

	data := pterm.TableData{{"Player", "Cards", "Hand", "Won", "Cash"}}
	for _, s := range seats {
		p := s.Player
		cards := "-"
		// only hands that went to showdown are revealed
		if hands[p.Name()] != "" {
			cards = formatCards(p.Hand())
		}

		data = append(data, []string{
			p.Name(),
			cards,
			hands[p.Name()],
			fmt.Sprintf("$%d", won[p.Name()]),
			"$" + strconv.Itoa(p.Cash()),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func formatCards(cards []*deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}

	return strings.Join(parts, " ")
}
