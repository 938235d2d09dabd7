package searcher

import (
	"errors"
	"fmt"
	"ghost/game"
	"math"
)

var ErrNoActions = errors.New("non-terminal state has no legal actions")

// Result pairs a guaranteed (or expected) value with the action reaching it.
// Action is game.NoAction for terminal states.
type Result struct {
	Value  float64
	Action game.Action
}

// Role tells which side of the zero-sum game moves at a state
type Role int

const (
	Max Role = iota // Player 0
	Min             // Player 1
)

func (r Role) String() string {
	if r == Max {
		return "max"
	}
	return "min"
}

// RoleOf maps a player index to the side it optimizes for.
func RoleOf(player int) Role {
	if player == 0 {
		return Max
	}
	return Min
}

// Searcher finds the best action for the player to move at the given state.
type Searcher interface {
	Search(state game.State) (Result, error)
	Nodes() int
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// terminal short-circuits the search on a terminal state.
func terminal(state game.State) (Result, bool, error) {
	if !state.IsTerminal() {
		return Result{}, false, nil
	}
	v, err := state.Value()
	if err != nil {
		return Result{}, true, err
	}
	return Result{Value: v, Action: game.NoAction}, true, nil
}

// expand returns the actions of a non-terminal state, refusing to continue
// with none.
func expand(state game.State) ([]game.Action, error) {
	actions, err := state.Actions()
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoActions, state)
	}
	return actions, nil
}
