package agent

import (
	"fmt"
	"ghost/game"
	"ghost/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	index int
	rng   *rand.Rand
}

// NewRandomAgent returns an agent picking uniformly among the legal actions,
// without lookahead. The generator must not be shared across goroutines.
func NewRandomAgent(index int, rng *rand.Rand) Agent {
	return &randomAgent{index: index, rng: rng}
}

func (a *randomAgent) Index() int {
	return a.index
}

func (a *randomAgent) String() string {
	return string(Random)
}

func (a *randomAgent) ChooseAction(state game.State) (game.Action, error) {
	actions, err := state.Actions()
	if err != nil {
		return game.NoAction, fmt.Errorf("agent %d: %w", a.index, err)
	}
	if len(actions) == 0 {
		return game.NoAction, fmt.Errorf("agent %d: %w", a.index, searcher.ErrNoActions)
	}
	return actions[a.rng.Intn(len(actions))], nil
}
