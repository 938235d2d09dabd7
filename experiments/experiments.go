package experiments

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"ghost/engine"
	"ghost/experiments/metrics"
	"ghost/game"
	"ghost/meta"
	"ghost/searcher/agent"
	"ghost/utils"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var ErrNoGames = errors.New("experiment needs at least one game")

type Config struct {
	Games      int
	Goroutines int
	Seed       uint64
	Scoring    game.Scoring
	Records    bool
}

type Option func(c *Config)

func WithGames(games int) Option {
	return func(c *Config) {
		c.Games = games
	}
}

func WithGoroutines(goroutines int) Option {
	return func(c *Config) {
		if goroutines > 0 {
			c.Goroutines = goroutines
		}
	}
}

// WithSeed fixes the random agents' seeds; game i of a match up seeds its
// agents from seed+i.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithScoring(scoring game.Scoring) Option {
	return func(c *Config) {
		c.Scoring = scoring
	}
}

// WithRecords keeps per-game and per-move records in the report.
func WithRecords() Option {
	return func(c *Config) {
		c.Records = true
	}
}

func newConfig(options []Option) Config {
	c := Config{ // Default values
		Games:      meta.GAMES,
		Goroutines: meta.GO_ROUTINES,
		Scoring:    game.ScoreCompleter,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// MatchUp seats Agents[i] as player i
type MatchUp struct {
	Name   string
	Agents [2]agent.Kind
}

type Report struct {
	MatchUp MatchUp
	Mean    float64
	Games   []metrics.GameRecord
	Moves   []metrics.MoveRecord
}

// SimulateVersusRandom plays the expectation agent and the minimax agent
// against a random opponent from prefix, player 0 starting, and returns the
// mean value of each match up.
func SimulateVersusRandom(ctx context.Context, dictionary *game.Dictionary, prefix string, options ...Option) (optimal float64, minimax float64, reports []Report, err error) {
	matchUps := []MatchUp{
		{Name: "optimal_vs_random", Agents: [2]agent.Kind{agent.Expectimax, agent.Random}},
		{Name: "minimax_vs_random", Agents: [2]agent.Kind{agent.Minimax, agent.Random}},
	}

	log.Info().Msgf("starting versus random experiment from prefix %q...", prefix)

	for mi, matchUp := range matchUps {
		report, err := RunMatchUp(ctx, dictionary, prefix, 0, matchUp, options...)
		if err != nil {
			return 0, 0, nil, err
		}
		reports = append(reports, report)
		log.Info().Msgf("completed matchup %d of %d (%s) with mean value %.6f", mi+1, len(matchUps), matchUp.Name, report.Mean)
	}

	log.Info().Msg("completed versus random experiment")
	return reports[0].Mean, reports[1].Mean, reports, nil
}

// RunMatchUp plays the configured number of games concurrently. Every game
// builds its own agents, state and successor counter.
func RunMatchUp(ctx context.Context, dictionary *game.Dictionary, prefix string, startingPlayer int, matchUp MatchUp, options ...Option) (Report, error) {
	cfg := newConfig(options)
	if cfg.Games <= 0 {
		return Report{}, ErrNoGames
	}
	if err := engine.Validate(dictionary, prefix, startingPlayer); err != nil {
		return Report{}, err
	}

	values := make([]float64, cfg.Games)
	var mu sync.Mutex
	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Goroutines)
	for i := 0; i < cfg.Games; i++ {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			e, err := newEngine(dictionary, matchUp, cfg, cfg.Seed+uint64(i))
			if err != nil {
				return err
			}
			value, gameMetric, moveMetrics, err := e.Run(prefix, startingPlayer)
			if err != nil {
				return fmt.Errorf("%s game %d: %w", matchUp.Name, i+1, err)
			}
			values[i] = value

			if cfg.Records {
				mu.Lock()
				defer mu.Unlock()
				gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, GameMetric: gameMetric})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	// Games finish out of order
	slices.SortFunc(gameRecords, func(a, b metrics.GameRecord) int { return cmp.Compare(a.ID, b.ID) })
	slices.SortStableFunc(moveRecords, func(a, b metrics.MoveRecord) int { return cmp.Compare(a.Game, b.Game) })

	return Report{
		MatchUp: matchUp,
		Mean:    utils.Mean(values),
		Games:   gameRecords,
		Moves:   moveRecords,
	}, nil
}

func newEngine(dictionary *game.Dictionary, matchUp MatchUp, cfg Config, seed uint64) (*engine.LocalEngine, error) {
	var agents [2]agent.Agent
	for seat, kind := range matchUp.Agents {
		a, err := agent.New(kind, seat, seed)
		if err != nil {
			return nil, err
		}
		agents[seat] = a
	}

	options := []engine.Option{engine.WithScoring(cfg.Scoring)}
	if cfg.Records {
		options = append(options, engine.WithMetrics())
	}
	return engine.NewLocalEngine(dictionary, agents, options...), nil
}

// Save writes the records of every report under root/name.
func Save(root, name string, reports []Report) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	offset := 0
	for _, report := range reports {
		for _, record := range report.Games {
			record.ID += offset
			gameRecords = append(gameRecords, record)
		}
		for _, record := range report.Moves {
			record.Game += offset
			moveRecords = append(moveRecords, record)
		}
		offset += len(report.Games)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
