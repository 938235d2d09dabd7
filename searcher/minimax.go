package searcher

import (
	"ghost/game"

	"github.com/rs/zerolog/log"
)

// Minimax searches the full game tree, assuming both players play optimally.
// Ties keep the first action in enumeration order. A Minimax must not be
// shared across goroutines.
type Minimax struct {
	nodes int
}

func NewMinimax() *Minimax {
	return &Minimax{}
}

// Search picks the max branch for player 0 and the min branch otherwise.
func (m *Minimax) Search(state game.State) (Result, error) {
	m.nodes = 0
	var result Result
	var err error
	if RoleOf(state.Player()) == Max {
		result, err = m.MaxValue(state)
	} else {
		result, err = m.MinValue(state)
	}
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("searcher", "minimax").Int("nodes", m.nodes).Float64("value", result.Value).Str("action", result.Action.String()).Msg("search complete")
	return result, nil
}

// Nodes returns the number of states evaluated by the last search.
func (m *Minimax) Nodes() int {
	return m.nodes
}

// MaxValue returns the maximum value player 0 can guarantee against any
// opponent, and the action achieving it.
func (m *Minimax) MaxValue(state game.State) (Result, error) {
	m.nodes++
	if r, ok, err := terminal(state); ok || err != nil {
		return r, err
	}

	actions, err := expand(state)
	if err != nil {
		return Result{}, err
	}

	v := negInf
	best := 0
	for i, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return Result{}, err
		}
		r, err := m.MinValue(child)
		if err != nil {
			return Result{}, err
		}
		if r.Value > v {
			v = r.Value
			best = i
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}

// MinValue returns the minimum value player 1 can guarantee against any
// opponent, and the action achieving it.
func (m *Minimax) MinValue(state game.State) (Result, error) {
	m.nodes++
	if r, ok, err := terminal(state); ok || err != nil {
		return r, err
	}

	actions, err := expand(state)
	if err != nil {
		return Result{}, err
	}

	v := posInf
	best := 0
	for i, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return Result{}, err
		}
		r, err := m.MaxValue(child)
		if err != nil {
			return Result{}, err
		}
		if r.Value < v {
			v = r.Value
			best = i
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}
