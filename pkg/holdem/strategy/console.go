package strategy

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"pokermaster-server/pkg/deck"
	"pokermaster-server/pkg/holdem/action"
)

// prompter is the terminal I/O the console strategy needs
type prompter interface {
	Select(text string, options []string) (string, error)
	Input(text string) (string, error)
	Println(s string)
}

type ptermPrompter struct{}

func (ptermPrompter) Select(text string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).Show()
}

func (ptermPrompter) Input(text string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithDefaultText(text).Show()
}

func (ptermPrompter) Println(s string) {
	pterm.Println(s)
}

// Console asks a human at the terminal what to do
type Console struct {
	Name string
	io   prompter
}

// NewConsole returns a console strategy for the named player
func NewConsole(name string) *Console {
	return &Console{
		Name: name,
		io:   ptermPrompter{},
	}
}

// ShowActions implements Presenter
func (c *Console) ShowActions(allowed action.Set) {
	names := make([]string, 0, len(allowed))
	for _, a := range allowed.Sorted() {
		names = append(names, a.String())
	}

	c.io.Println(pterm.Info.Sprintfln("%s can: %s", c.Name, strings.Join(names, ", ")))
}

// Act implements Strategy
func (c *Console) Act(ctx context.Context, t Turn) (Decision, error) {
	if err := ctx.Err(); err != nil {
		return Decision{}, err
	}

	actions := t.Allowed.Sorted()
	if len(actions) == 0 {
		return Decision{}, ErrNoLegalAction
	}

	c.io.Println(c.turnPanel(t))

	options := make([]string, len(actions))
	byName := make(map[string]action.Action, len(actions))
	for i, a := range actions {
		options[i] = a.String()
		byName[options[i]] = a
	}

	selected, err := c.io.Select("Select your next action", options)
	if err != nil {
		return Decision{}, err
	}

	a, ok := byName[selected]
	if !ok {
		return Decision{}, fmt.Errorf("%w: unknown option %q", ErrIllegalDecision, selected)
	}

	switch a {
	case action.Bet, action.Raise:
		amount, err := c.readAmount(ctx, t)
		if err != nil {
			return Decision{}, err
		}

		return Decision{Action: a, Amount: amount}, nil
	case action.Call:
		return Decision{Action: a, Amount: t.ToCall()}, nil
	}

	return Decision{Action: a}, nil
}

func (c *Console) readAmount(ctx context.Context, t Turn) (int, error) {
	prompt := fmt.Sprintf("Amount (%d-%d)", t.MinBet, t.Cash)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		s, err := c.io.Input(prompt)
		if err != nil {
			return 0, err
		}

		amount, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || amount < t.MinBet || amount > t.Cash {
			c.io.Println(pterm.Warning.Sprintfln("%q is not a valid amount", s))
			continue
		}

		return amount, nil
	}
}

func (c *Console) turnPanel(t Turn) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Cash: %d   In this round: %d   To call: %d\n", t.Cash, t.PlayerBet, t.ToCall()))
	sb.WriteString(fmt.Sprintf("Hole cards: %s", formatCards(t.Hole)))
	if t.SeesBoard() {
		sb.WriteString(fmt.Sprintf("\nBoard: %s", formatCards(t.Board)))
	}

	return pterm.DefaultBox.
		WithTitle(pterm.LightCyan(c.Name)).
		WithTitleTopCenter().
		WithLeftPadding(2).
		WithRightPadding(2).
		Sprint(sb.String())
}

func formatCards(cards []*deck.Card) string {
	if len(cards) == 0 {
		return "-"
	}

	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
