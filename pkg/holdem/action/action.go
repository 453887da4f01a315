package action

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Action represents an action a player can take
// The zero value, None, means no action has been recorded
type Action string

// action constants
const (
	None       Action = ""
	Fold       Action = "fold"
	Check      Action = "check"
	Call       Action = "call"
	Bet        Action = "bet"
	Raise      Action = "raise"
	AllIn      Action = "all_in"
	SmallBlind Action = "small_blind"
	BigBlind   Action = "big_blind"
	Continue   Action = "continue"
)

// displayOrder is the order actions are presented in
var displayOrder = map[Action]int{
	SmallBlind: 0,
	BigBlind:   1,
	Check:      2,
	Call:       3,
	Bet:        4,
	Raise:      5,
	AllIn:      6,
	Continue:   7,
	Fold:       8,
}

// FromString returns an action for the given string
func FromString(s string) (Action, error) {
	a := Action(s)
	if a.IsValid() {
		return a, nil
	}

	return None, fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case None:
		return "None"
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	case AllIn:
		return "All-in"
	case SmallBlind:
		return "Small blind"
	case BigBlind:
		return "Big blind"
	case Continue:
		return "Continue"
	}

	panic("unknown action")
}

// IsValid returns true if the action is one of the known moves
// None is not a valid move
func (a Action) IsValid() bool {
	_, ok := displayOrder[a]
	return ok
}

// MarshalJSON encodes the action into JSON
// None is encoded as null
func (a Action) MarshalJSON() ([]byte, error) {
	if a == None {
		return []byte("null"), nil
	}

	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// UnmarshalJSON decodes either the object form written by MarshalJSON or a bare identifier
func (a *Action) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = None
		return nil
	}

	var id string
	if err := json.Unmarshal(b, &id); err != nil {
		var obj struct {
			ID string `json:"id"`
		}

		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}

		id = obj.ID
	}

	parsed, err := FromString(id)
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

// LogMessage returns a message formatted for the log
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised to ${%d}", amount)
	case AllIn:
		return fmt.Sprintf("went all-in for ${%d}", amount)
	case SmallBlind:
		return fmt.Sprintf("posted the small blind of ${%d}", amount)
	case BigBlind:
		return fmt.Sprintf("posted the big blind of ${%d}", amount)
	}

	return ""
}

// Set is a set of actions, e.g., the actions currently allowed for a player
type Set map[Action]bool

// NewSet returns a set containing the actions
func NewSet(actions ...Action) Set {
	s := make(Set, len(actions))
	for _, a := range actions {
		s[a] = true
	}

	return s
}

// Has returns true if the action is in the set
func (s Set) Has(a Action) bool {
	return s[a]
}

// Sorted returns the actions in display order
func (s Set) Sorted() []Action {
	actions := make([]Action, 0, len(s))
	for a, ok := range s {
		if ok {
			actions = append(actions, a)
		}
	}

	sort.Slice(actions, func(i, j int) bool {
		return displayOrder[actions[i]] < displayOrder[actions[j]]
	})

	return actions
}
