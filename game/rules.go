package game

import "fmt"

// Scoring decides the sign of a terminal payoff
type Scoring int

const (
	// ScoreCompleter signs the payoff by the player who completed the word:
	// (-1)^completer / len(word).
	ScoreCompleter Scoring = iota
	// PenalizeCompleter signs the payoff by the player to move at the
	// terminal state, so completing a word counts against the completer.
	PenalizeCompleter
)

func (s Scoring) String() string {
	switch s {
	case ScoreCompleter:
		return "score-completer"
	case PenalizeCompleter:
		return "penalize-completer"
	default:
		return fmt.Sprintf("Scoring(%d)", int(s))
	}
}

// ParseScoring maps a scoring name back to its rule.
func ParseScoring(name string) (Scoring, error) {
	switch name {
	case "", ScoreCompleter.String():
		return ScoreCompleter, nil
	case PenalizeCompleter.String():
		return PenalizeCompleter, nil
	default:
		return 0, fmt.Errorf("unknown scoring rule %q", name)
	}
}

// payoff computes the terminal value of a word of length n, given the
// player to move at the terminal state.
func (s Scoring) payoff(toMove int, n int) float64 {
	signer := toMove
	if s == ScoreCompleter {
		signer = (toMove + 1) % 2
	}
	if signer == 0 {
		return 1.0 / float64(n)
	}
	return -1.0 / float64(n)
}
