package searcher

import (
	"fmt"
	"ghost/game"
)

// mockNode is a hand-built game tree: a leaf is terminal with a value, an
// inner node labels its children 'a', 'b', 'c', ... in order.
type mockNode struct {
	leaf     bool
	value    float64
	children []*mockNode
}

func leaf(value float64) *mockNode {
	return &mockNode{leaf: true, value: value}
}

func branch(children ...*mockNode) *mockNode {
	return &mockNode{children: children}
}

type mockState struct {
	node       *mockNode
	player     int
	successors *int
}

func newMockState(node *mockNode, player int) mockState {
	return mockState{node: node, player: player, successors: new(int)}
}

func (m mockState) Player() int {
	return m.player
}

func (m mockState) IsTerminal() bool {
	return m.node.leaf
}

func (m mockState) Actions() ([]game.Action, error) {
	if m.node.leaf {
		return nil, game.ErrTerminalState
	}
	actions := make([]game.Action, len(m.node.children))
	for i := range m.node.children {
		actions[i] = game.Action('a' + i)
	}
	return actions, nil
}

func (m mockState) Successor(action game.Action) (game.State, error) {
	i := int(action - 'a')
	if i < 0 || i >= len(m.node.children) {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidAction, action)
	}
	*m.successors++
	return mockState{node: m.node.children[i], player: (m.player + 1) % 2, successors: m.successors}, nil
}

func (m mockState) Value() (float64, error) {
	if !m.node.leaf {
		return 0, game.ErrNotTerminal
	}
	return m.node.value, nil
}

func (m mockState) String() string {
	return fmt.Sprintf("mock (player %d)", m.player)
}

// classicTree is the textbook two-ply tree: max over {min(3,12,8), min(2,4,6), min(14,5,2)}.
func classicTree() *mockNode {
	return branch(
		branch(leaf(3), leaf(12), leaf(8)),
		branch(leaf(2), leaf(4), leaf(6)),
		branch(leaf(14), leaf(5), leaf(2)),
	)
}

func newGhostState(words []string, prefix string, player int) (*game.GhostState, *game.Counter, error) {
	d, err := game.NewDictionary(words)
	if err != nil {
		return nil, nil, err
	}
	counter := game.NewCounter()
	return game.NewGhostState(prefix, d, player, game.WithCounter(counter)), counter, nil
}
