package main

import (
	"context"
	"flag"
	"fmt"
	"ghost/engine"
	"ghost/experiments"
	"ghost/game"
	"ghost/meta"
	"ghost/searcher/agent"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	dictionary string
	prefix     string
	player     int
	agents     [2]string
	scoring    string
	games      int
	goroutines int
	seed       uint64
	out        string
	timeout    time.Duration
}

func main() {
	_ = godotenv.Load()

	cfg := config{}
	flag.StringVar(&cfg.mode, "mode", "play", "One of play, versus, pruning")
	flag.StringVar(&cfg.dictionary, "dict", getEnv("GHOST_DICTIONARY", meta.DICTIONARY_FILE), "Newline-delimited word list")
	flag.StringVar(&cfg.prefix, "prefix", meta.STARTING_PREFIX, "Starting prefix")
	flag.IntVar(&cfg.player, "player", 0, "Starting player (0 or 1)")
	flag.StringVar(&cfg.agents[0], "agent0", string(agent.Minimax), "Agent for player 0: minimax, alphabeta, expectimax, random")
	flag.StringVar(&cfg.agents[1], "agent1", string(agent.Minimax), "Agent for player 1: minimax, alphabeta, expectimax, random")
	flag.StringVar(&cfg.scoring, "scoring", game.ScoreCompleter.String(), "Terminal payoff rule: score-completer or penalize-completer")
	flag.IntVar(&cfg.games, "games", meta.GAMES, "Games per match up in versus mode")
	flag.IntVar(&cfg.goroutines, "goroutines", meta.GO_ROUTINES, "Concurrent games in versus mode")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed for random agents")
	flag.StringVar(&cfg.out, "out", "", "Directory for CSV records (none if empty)")
	flag.DurationVar(&cfg.timeout, "timeout", 0, "Stop versus mode after this long (0 for no limit)")
	logLevel := flag.String("log-level", getEnv("LOG_LEVEL", "info"), "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(parseLogLevel(*logLevel))

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func run(cfg config) error {
	dictionary, err := game.LoadDictionary(cfg.dictionary)
	if err != nil {
		return err
	}
	log.Info().Int("words", dictionary.Len()).Int("prefixes", dictionary.Prefixes()).Msgf("loaded %s", cfg.dictionary)

	scoring, err := game.ParseScoring(cfg.scoring)
	if err != nil {
		return err
	}

	switch cfg.mode {
	case "play":
		return play(cfg, dictionary, scoring)
	case "versus":
		return versus(cfg, dictionary, scoring)
	case "pruning":
		return pruning(cfg, dictionary, scoring)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func play(cfg config, dictionary *game.Dictionary, scoring game.Scoring) error {
	var agents [2]agent.Agent
	for seat, name := range cfg.agents {
		kind, err := agent.ParseKind(name)
		if err != nil {
			return err
		}
		agents[seat], err = agent.New(kind, seat, cfg.seed+uint64(seat))
		if err != nil {
			return err
		}
	}

	log.Info().Msgf("starting prefix: %q. starting agent: %d", cfg.prefix, cfg.player)
	e := engine.NewLocalEngine(dictionary, agents, engine.WithScoring(scoring), engine.WithMetrics())
	value, gameMetric, moveMetrics, err := e.Run(cfg.prefix, cfg.player)
	if err != nil {
		return err
	}

	for _, mm := range moveMetrics {
		log.Info().Msgf("agent %d placed a %v, bringing the current prefix to %q (%s)", mm.Player, mm.Action, mm.Prefix, mm.Duration)
	}
	log.Info().Msgf("total number of successor generations: %d", gameMetric.Successors)
	log.Info().Str("word", gameMetric.Word).Float64("value", value).Msg("the game is over")
	return nil
}

func versus(cfg config, dictionary *game.Dictionary, scoring game.Scoring) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	options := []experiments.Option{
		experiments.WithGames(cfg.games),
		experiments.WithGoroutines(cfg.goroutines),
		experiments.WithSeed(cfg.seed),
		experiments.WithScoring(scoring),
	}
	if cfg.out != "" {
		options = append(options, experiments.WithRecords())
	}

	optimal, minimax, reports, err := experiments.SimulateVersusRandom(ctx, dictionary, cfg.prefix, options...)
	if err != nil {
		return err
	}
	log.Info().Float64("optimal_vs_random", optimal).Float64("minimax_vs_random", minimax).Msgf("mean values over %d games", cfg.games)

	if cfg.out != "" {
		dir, err := experiments.Save(cfg.out, "versus_random", reports)
		if err != nil {
			return err
		}
		log.Info().Msgf("records written to %s", dir)
	}
	return nil
}

func pruning(cfg config, dictionary *game.Dictionary, scoring game.Scoring) error {
	starts := []experiments.Start{{Prefix: cfg.prefix, Player: cfg.player}}
	for _, action := range dictionary.Extensions(cfg.prefix) {
		next := cfg.prefix + string(action)
		if !dictionary.IsWord(next) {
			starts = append(starts, experiments.Start{Prefix: next, Player: (cfg.player + 1) % 2})
		}
	}

	records, err := experiments.ComparePruning(dictionary, starts, scoring)
	if err != nil {
		return err
	}

	if cfg.out != "" {
		dir, err := experiments.SavePruning(cfg.out, records)
		if err != nil {
			return err
		}
		log.Info().Msgf("records written to %s", dir)
	}
	return nil
}

// parseLogLevel falls back to info, with a warning, on an unknown level.
func parseLogLevel(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Err(err).Msgf("invalid log level %q, keeping info", name)
		return zerolog.InfoLevel
	}
	return lvl
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
