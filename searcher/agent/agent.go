package agent

import (
	"errors"
	"fmt"
	"ghost/game"
	"ghost/searcher"

	"golang.org/x/exp/rand"
)

var ErrUnknownKind = errors.New("unknown agent kind")

type Agent interface {
	// Index is the seat the agent was created for
	Index() int
	// ChooseAction returns the action to play for the player to move at state
	ChooseAction(state game.State) (game.Action, error)
}

// Kind names an agent implementation
type Kind string

const (
	Minimax    Kind = "minimax"
	AlphaBeta  Kind = "alphabeta"
	Expectimax Kind = "expectimax"
	Random     Kind = "random"
)

var Kinds = []Kind{Minimax, AlphaBeta, Expectimax, Random}

func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds an agent of the given kind for a seat. The seed is only used
// by agents that sample.
func New(kind Kind, index int, seed uint64) (Agent, error) {
	switch kind {
	case Minimax:
		return NewMinimaxAgent(index), nil
	case AlphaBeta:
		return NewAlphaBetaAgent(index), nil
	case Expectimax:
		return NewExpectimaxAgent(index), nil
	case Random:
		return NewRandomAgent(index, rand.New(rand.NewSource(seed))), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type searchAgent struct {
	kind     Kind
	index    int
	searcher searcher.Searcher
}

// Search agents keep per-search state; use one agent per goroutine.

// NewMinimaxAgent returns an agent that plays the minimax action.
func NewMinimaxAgent(index int) Agent {
	return &searchAgent{kind: Minimax, index: index, searcher: searcher.NewMinimax()}
}

// NewAlphaBetaAgent returns an agent that plays the minimax action found
// with alpha-beta pruning.
func NewAlphaBetaAgent(index int) Agent {
	return &searchAgent{kind: AlphaBeta, index: index, searcher: searcher.NewAlphaBeta()}
}

// NewExpectimaxAgent returns an agent optimized against a uniformly random
// opponent.
func NewExpectimaxAgent(index int) Agent {
	return &searchAgent{kind: Expectimax, index: index, searcher: searcher.NewExpectimax()}
}

func (a *searchAgent) Index() int {
	return a.index
}

func (a *searchAgent) String() string {
	return string(a.kind)
}

// ChooseAction dispatches on the state's player rather than the agent's
// seat, so one agent can serve either side.
func (a *searchAgent) ChooseAction(state game.State) (game.Action, error) {
	if state.IsTerminal() {
		return game.NoAction, fmt.Errorf("agent %d: %w", a.index, game.ErrTerminalState)
	}
	result, err := a.searcher.Search(state)
	if err != nil {
		return game.NoAction, fmt.Errorf("agent %d: %w", a.index, err)
	}
	return result.Action, nil
}
