package engine

import (
	"errors"
	"fmt"
	"ghost/experiments/metrics"
	"ghost/game"
)

var (
	ErrPrefixIsWord  = errors.New("prefix input is already a word")
	ErrUnknownPrefix = errors.New("prefix input is not in the set of valid prefixes")
	ErrInvalidPlayer = errors.New("starting player must be 0 or 1")
	ErrIllegalAction = errors.New("agent chose an illegal action")
)

type Engine interface {
	// Run plays from the starting prefix until a word is completed and returns the terminal value
	Run(prefix string, startingPlayer int) (value float64, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Validate checks that a game can start from prefix with the given player.
func Validate(dictionary *game.Dictionary, prefix string, startingPlayer int) error {
	if startingPlayer != 0 && startingPlayer != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, startingPlayer)
	}
	if dictionary.IsWord(prefix) {
		return fmt.Errorf("%w: %q", ErrPrefixIsWord, prefix)
	}
	if !dictionary.IsPrefix(prefix) {
		return fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}
	return nil
}
