package searcher

import (
	"ghost/game"

	"github.com/rs/zerolog/log"
)

// AlphaBeta is minimax with alpha-beta pruning. Alpha is the value the
// maximizer can already guarantee on the current path, beta the value the
// minimizer can already guarantee.
//
// The running best starts at the incoming bound rather than an infinity, so
// a node whose children never improve on that bound reports the bound
// together with its first action. An AlphaBeta must not be shared across
// goroutines.
type AlphaBeta struct {
	nodes int
}

func NewAlphaBeta() *AlphaBeta {
	return &AlphaBeta{}
}

// Search runs from the full window (-Inf, +Inf).
func (ab *AlphaBeta) Search(state game.State) (Result, error) {
	ab.nodes = 0
	var result Result
	var err error
	if RoleOf(state.Player()) == Max {
		result, err = ab.MaxValue(state, negInf, posInf)
	} else {
		result, err = ab.MinValue(state, negInf, posInf)
	}
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("searcher", "alphabeta").Int("nodes", ab.nodes).Float64("value", result.Value).Str("action", result.Action.String()).Msg("search complete")
	return result, nil
}

// Nodes returns the number of states evaluated by the last search.
func (ab *AlphaBeta) Nodes() int {
	return ab.nodes
}

func (ab *AlphaBeta) MaxValue(state game.State, alpha, beta float64) (Result, error) {
	ab.nodes++
	if r, ok, err := terminal(state); ok || err != nil {
		return r, err
	}

	actions, err := expand(state)
	if err != nil {
		return Result{}, err
	}

	v := alpha
	best := 0
	for i, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return Result{}, err
		}
		r, err := ab.MinValue(child, v, beta)
		if err != nil {
			return Result{}, err
		}
		if r.Value > v {
			v = r.Value
			best = i
		}
		if v >= beta { // Beta cut-off
			break
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}

func (ab *AlphaBeta) MinValue(state game.State, alpha, beta float64) (Result, error) {
	ab.nodes++
	if r, ok, err := terminal(state); ok || err != nil {
		return r, err
	}

	actions, err := expand(state)
	if err != nil {
		return Result{}, err
	}

	v := beta
	best := 0
	for i, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return Result{}, err
		}
		r, err := ab.MaxValue(child, alpha, v)
		if err != nil {
			return Result{}, err
		}
		if r.Value < v {
			v = r.Value
			best = i
		}
		if v <= alpha { // Alpha cut-off
			break
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}
