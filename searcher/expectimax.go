package searcher

import (
	"ghost/game"

	"github.com/rs/zerolog/log"
)

// Expectimax optimizes against an opponent that picks uniformly at random
// among its legal actions. MaxValue and MinValue play the optimizing side;
// ExpectedValue averages over the random side's moves. An Expectimax must
// not be shared across goroutines.
type Expectimax struct {
	nodes int
}

func NewExpectimax() *Expectimax {
	return &Expectimax{}
}

func (e *Expectimax) Search(state game.State) (Result, error) {
	e.nodes = 0
	var result Result
	var err error
	if RoleOf(state.Player()) == Max {
		result, err = e.MaxValue(state)
	} else {
		result, err = e.MinValue(state)
	}
	if err != nil {
		return Result{}, err
	}
	log.Debug().Str("searcher", "expectimax").Int("nodes", e.nodes).Float64("value", result.Value).Str("action", result.Action.String()).Msg("search complete")
	return result, nil
}

// Nodes returns the number of states evaluated by the last search.
func (e *Expectimax) Nodes() int {
	return e.nodes
}

// MaxValue picks the action maximizing the expected value when the next
// mover (the minimizing side) plays at random.
func (e *Expectimax) MaxValue(state game.State) (Result, error) {
	e.nodes++
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
		ev, err := e.ExpectedValue(child, Min)
		if err != nil {
			return Result{}, err
		}
		if ev > v {
			v = ev
			best = i
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}

// MinValue picks the action minimizing the expected value when the next
// mover (the maximizing side) plays at random.
func (e *Expectimax) MinValue(state game.State) (Result, error) {
	e.nodes++
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
		ev, err := e.ExpectedValue(child, Max)
		if err != nil {
			return Result{}, err
		}
		if ev < v {
			v = ev
			best = i
		}
	}
	return Result{Value: v, Action: actions[best]}, nil
}

// ExpectedValue is the value of a state whose mover, playing the given
// role, chooses uniformly at random. The side after it is assumed optimal.
func (e *Expectimax) ExpectedValue(state game.State, random Role) (float64, error) {
	e.nodes++
	if r, ok, err := terminal(state); ok || err != nil {
		return r.Value, err
	}

	actions, err := expand(state)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for _, action := range actions {
		child, err := state.Successor(action)
		if err != nil {
			return 0, err
		}
		var r Result
		if random == Max {
			r, err = e.MinValue(child)
		} else {
			r, err = e.MaxValue(child)
		}
		if err != nil {
			return 0, err
		}
		sum += r.Value
	}
	return sum / float64(len(actions)), nil
}
