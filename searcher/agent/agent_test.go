package agent

import (
	"ghost/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newState(t *testing.T, words []string, prefix string, player int) *game.GhostState {
	t.Helper()
	d, err := game.NewDictionary(words)
	require.NoError(t, err)
	return game.NewGhostState(prefix, d, player)
}

func TestSearchAgents(t *testing.T) {
	words := []string{"cat", "cars"}

	for _, kind := range []Kind{Minimax, AlphaBeta, Expectimax} {
		t.Run(string(kind)+" maximizes for player 0", func(t *testing.T) {
			a, err := New(kind, 0, 0)
			require.NoError(t, err)

			action, err := a.ChooseAction(newState(t, words, "ca", 0))
			require.NoError(t, err)
			require.Equal(t, game.Action('t'), action)
		})

		t.Run(string(kind)+" minimizes for player 1", func(t *testing.T) {
			a, err := New(kind, 1, 0)
			require.NoError(t, err)

			action, err := a.ChooseAction(newState(t, words, "ca", 1))
			require.NoError(t, err)
			require.Equal(t, game.Action('t'), action, "Player 1 should complete \"cat\" rather than leave \"cars\" to player 0")
		})

		t.Run(string(kind)+" routes on the state's player, not its seat", func(t *testing.T) {
			a, err := New(kind, 1, 0)
			require.NoError(t, err)
			require.Equal(t, 1, a.Index())

			action, err := a.ChooseAction(newState(t, words, "ca", 0))
			require.NoError(t, err)
			require.Equal(t, game.Action('t'), action)
		})

		t.Run(string(kind)+" refuses a terminal state", func(t *testing.T) {
			a, err := New(kind, 0, 0)
			require.NoError(t, err)

			_, err = a.ChooseAction(newState(t, words, "cat", 0))
			require.ErrorIs(t, err, game.ErrTerminalState)
		})
	}
}

func TestRandomAgent(t *testing.T) {
	words := []string{"ab", "cd", "ef", "gh"}

	t.Run("only plays legal actions and eventually tries each", func(t *testing.T) {
		a := NewRandomAgent(0, rand.New(rand.NewSource(7)))
		state := newState(t, words, "", 0)

		seen := map[game.Action]int{}
		for i := 0; i < 400; i++ {
			action, err := a.ChooseAction(state)
			require.NoError(t, err)
			seen[action]++
		}
		require.Len(t, seen, 4)
		for _, action := range []game.Action{'a', 'c', 'e', 'g'} {
			require.Positive(t, seen[action], "Action %v should be sampled", action)
		}
	})

	t.Run("same seed replays the same choices", func(t *testing.T) {
		first, err := New(Random, 0, 42)
		require.NoError(t, err)
		second, err := New(Random, 0, 42)
		require.NoError(t, err)
		state := newState(t, words, "", 0)

		for i := 0; i < 20; i++ {
			want, err := first.ChooseAction(state)
			require.NoError(t, err)
			got, err := second.ChooseAction(state)
			require.NoError(t, err)
			require.Equal(t, want, got)
		}
	})

	t.Run("refuses a terminal state", func(t *testing.T) {
		a := NewRandomAgent(1, rand.New(rand.NewSource(1)))

		_, err := a.ChooseAction(newState(t, words, "ab", 1))
		require.ErrorIs(t, err, game.ErrTerminalState)
	})
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		got, err := ParseKind(string(kind))
		require.NoError(t, err)
		require.Equal(t, kind, got)
	}

	_, err := ParseKind("mcts")
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = New(Kind("mcts"), 0, 0)
	require.ErrorIs(t, err, ErrUnknownKind)
}
