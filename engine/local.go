package engine

import (
	"fmt"
	"ghost/experiments/metrics"
	"ghost/game"
	"ghost/searcher/agent"
	"ghost/utils"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithScoring(scoring game.Scoring) Option {
	return func(e *LocalEngine) {
		e.scoring = scoring
	}
}

// WithMetrics records every move and the game timings.
func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.newCollector = metrics.NewCollector
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(e *LocalEngine) {
		e.logger = logger
	}
}

// LocalEngine plays Ghost between two in-process agents. Agent i plays the
// seat of player i.
type LocalEngine struct {
	dictionary   *game.Dictionary
	agents       [2]agent.Agent
	scoring      game.Scoring
	newCollector func() metrics.Collector
	logger       zerolog.Logger
}

func NewLocalEngine(dictionary *game.Dictionary, agents [2]agent.Agent, options ...Option) *LocalEngine {
	if dictionary == nil {
		panic("engine needs a dictionary")
	}
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("missing agent for player %d", i))
		}
	}

	e := &LocalEngine{ // Default values
		dictionary:   dictionary,
		agents:       agents,
		scoring:      game.ScoreCompleter,
		newCollector: metrics.NewDummyCollector,
		logger:       log.Logger,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the game loop until the prefix becomes a word. Each run
// counts successor generations on its own counter.
func (e *LocalEngine) Run(prefix string, startingPlayer int) (float64, metrics.GameMetric, []metrics.MoveMetric, error) {
	if err := Validate(e.dictionary, prefix, startingPlayer); err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	counter := game.NewCounter()
	collector := e.newCollector()
	collector.Start(prefix, startingPlayer, e.names())

	state := game.NewGhostState(prefix, e.dictionary, startingPlayer, game.WithScoring(e.scoring), game.WithCounter(counter))
	e.logger.Debug().Msgf("starting prefix %q, starting agent %d", prefix, startingPlayer)

	for !state.IsTerminal() {
		player := state.Player()
		legal, err := state.Actions()
		if err != nil {
			return 0, metrics.GameMetric{}, nil, err
		}

		start := time.Now()
		action, err := e.agents[player].ChooseAction(state)
		if err != nil {
			return 0, metrics.GameMetric{}, nil, fmt.Errorf("player %d at %q: %w", player, state.Prefix(), err)
		}
		if utils.FindIndex(legal, action) < 0 {
			return 0, metrics.GameMetric{}, nil, fmt.Errorf("%w: player %d played %v at %q", ErrIllegalAction, player, action, state.Prefix())
		}

		next, err := state.Successor(action)
		if err != nil {
			return 0, metrics.GameMetric{}, nil, err
		}
		state = next.(*game.GhostState)
		collector.AddMove(player, action, state.Prefix(), time.Since(start))

		e.logger.Debug().Msgf("agent %d placed a %v, bringing the current prefix to %q", player, action, state.Prefix())
	}

	value, err := state.Value()
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	gameMetric, moveMetrics := collector.Complete(state.Prefix(), value, counter.Load())

	e.logger.Debug().
		Str("word", state.Prefix()).
		Float64("value", value).
		Int64("successors", counter.Load()).
		Msg("game over")

	return value, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) names() [2]string {
	return [2]string{fmt.Sprint(e.agents[0]), fmt.Sprint(e.agents[1])}
}
