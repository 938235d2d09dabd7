package experiments

import (
	"fmt"
	"ghost/engine"
	"ghost/experiments/metrics"
	"ghost/game"
	"ghost/searcher"

	"github.com/rs/zerolog/log"
)

type Start struct {
	Prefix string
	Player int
}

// ComparePruning searches every start position with minimax and with
// alpha-beta, each from a fresh counter, and reports both root values and
// successor counts.
func ComparePruning(dictionary *game.Dictionary, starts []Start, scoring game.Scoring) ([]metrics.PruningMetric, error) {
	records := make([]metrics.PruningMetric, 0, len(starts))
	for _, start := range starts {
		if err := engine.Validate(dictionary, start.Prefix, start.Player); err != nil {
			return nil, err
		}

		minimaxValue, minimaxSuccessors, err := search(searcher.NewMinimax(), dictionary, start, scoring)
		if err != nil {
			return nil, err
		}
		alphaBetaValue, alphaBetaSuccessors, err := search(searcher.NewAlphaBeta(), dictionary, start, scoring)
		if err != nil {
			return nil, err
		}

		if minimaxValue != alphaBetaValue {
			log.Warn().Msgf("alpha-beta value %v differs from minimax value %v at %q", alphaBetaValue, minimaxValue, start.Prefix)
		}
		log.Info().Msgf("prefix %q player %d: minimax %d successors, alpha-beta %d successors", start.Prefix, start.Player, minimaxSuccessors, alphaBetaSuccessors)

		records = append(records, metrics.PruningMetric{
			Prefix:              start.Prefix,
			Player:              start.Player,
			MinimaxValue:        minimaxValue,
			AlphaBetaValue:      alphaBetaValue,
			MinimaxSuccessors:   minimaxSuccessors,
			AlphaBetaSuccessors: alphaBetaSuccessors,
		})
	}
	return records, nil
}

func search(s searcher.Searcher, dictionary *game.Dictionary, start Start, scoring game.Scoring) (float64, int64, error) {
	counter := game.NewCounter()
	state := game.NewGhostState(start.Prefix, dictionary, start.Player, game.WithScoring(scoring), game.WithCounter(counter))
	result, err := s.Search(state)
	if err != nil {
		return 0, 0, fmt.Errorf("search from %q: %w", start.Prefix, err)
	}
	return result.Value, counter.Load(), nil
}

// SavePruning writes pruning records under root/pruning.
func SavePruning(root string, records []metrics.PruningMetric) (string, error) {
	writer, err := metrics.NewWriter(root, "pruning")
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WritePruningRecords(records)
	if err != nil {
		return "", fmt.Errorf("failed to write pruning records: %w", err)
	}
	log.Info().Msg("stored pruning records")
	return writer.Dir(), nil
}
