package game

import "fmt"

type StateOption func(gs *GhostState)

// WithScoring selects the terminal payoff rule.
func WithScoring(scoring Scoring) StateOption {
	return func(gs *GhostState) {
		gs.scoring = scoring
	}
}

// WithCounter attaches the game's successor counter. Every state derived
// from this one shares it.
func WithCounter(counter *Counter) StateOption {
	return func(gs *GhostState) {
		gs.counter = counter
	}
}

// GhostState is one position of a Ghost game: the prefix built so far, the
// player to move, and the dictionary shared by the whole game.
type GhostState struct {
	prefix     string
	player     int
	dictionary *Dictionary
	scoring    Scoring
	counter    *Counter
}

func NewGhostState(prefix string, dictionary *Dictionary, player int, options ...StateOption) *GhostState {
	gs := &GhostState{
		prefix:     prefix,
		player:     player,
		dictionary: dictionary,
	}
	for _, option := range options {
		option(gs)
	}
	return gs
}

func (gs *GhostState) Prefix() string {
	return gs.prefix
}

func (gs *GhostState) Player() int {
	return gs.player
}

func (gs *GhostState) IsTerminal() bool {
	return gs.dictionary.IsWord(gs.prefix)
}

func (gs *GhostState) Actions() ([]Action, error) {
	if gs.IsTerminal() {
		return nil, fmt.Errorf("%w: %q", ErrTerminalState, gs.prefix)
	}
	return gs.dictionary.Extensions(gs.prefix), nil
}

func (gs *GhostState) Successor(action Action) (State, error) {
	if gs.IsTerminal() {
		return nil, fmt.Errorf("%w: %q", ErrTerminalState, gs.prefix)
	}
	if !action.IsSymbol() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, rune(action))
	}
	gs.counter.Add()
	return &GhostState{
		prefix:     gs.prefix + string(action),
		player:     (gs.player + 1) % 2,
		dictionary: gs.dictionary,
		scoring:    gs.scoring,
		counter:    gs.counter,
	}, nil
}

func (gs *GhostState) Value() (float64, error) {
	if !gs.IsTerminal() {
		return 0, fmt.Errorf("%w: %q", ErrNotTerminal, gs.prefix)
	}
	return gs.scoring.payoff(gs.player, len(gs.prefix)), nil
}

func (gs *GhostState) String() string {
	return fmt.Sprintf("%q (player %d)", gs.prefix, gs.player)
}
