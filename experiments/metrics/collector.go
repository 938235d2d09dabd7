package metrics

import (
	"ghost/game"
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int
	Action   game.Action
	Prefix   string // Prefix after the move
	Duration time.Duration
}

type GameMetric struct {
	StartingPrefix string
	StartingPlayer int
	Agents         [2]string
	Word           string
	Value          float64
	Successors     int64
	TotalMoves     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

type PruningMetric struct {
	Prefix              string
	Player              int
	MinimaxValue        float64
	AlphaBetaValue      float64
	MinimaxSuccessors   int64
	AlphaBetaSuccessors int64
}

type Collector interface {
	Start(prefix string, player int, agents [2]string)
	AddMove(player int, action game.Action, prefix string, duration time.Duration)
	Complete(word string, value float64, successors int64) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(prefix string, player int, agents [2]string) {
	m.game = GameMetric{
		StartingPrefix: prefix,
		StartingPlayer: player,
		Agents:         agents,
		StartTime:      time.Now(),
	}
	m.moves = nil
}

func (m *collector) AddMove(player int, action game.Action, prefix string, duration time.Duration) {
	m.moves = append(m.moves, MoveMetric{
		Step:     len(m.moves) + 1,
		Player:   player,
		Action:   action,
		Prefix:   prefix,
		Duration: duration,
	})
}

func (m *collector) Complete(word string, value float64, successors int64) (GameMetric, []MoveMetric) {
	m.game.EndTime = time.Now()
	m.game.Duration = m.game.EndTime.Sub(m.game.StartTime)
	m.game.Word = word
	m.game.Value = value
	m.game.Successors = successors
	m.game.TotalMoves = len(m.moves)
	return m.game, m.moves
}

// dummyCollector only reports the outcome of the game
type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(prefix string, player int, agents [2]string)                      {}
func (m *dummyCollector) AddMove(player int, action game.Action, prefix string, d time.Duration) {}
func (m *dummyCollector) Complete(word string, value float64, successors int64) (GameMetric, []MoveMetric) {
	return GameMetric{Word: word, Value: value, Successors: successors}, nil
}
