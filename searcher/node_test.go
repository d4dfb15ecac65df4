package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gametree/game"
)

type mockMove struct {
	id int
}

// mockState scripts an arbitrary game tree: moves and children are parallel,
// outcomes mark a chance state.
type mockState struct {
	player   game.Player
	terminal bool
	chance   bool
	score    float64
	moves    []game.Move
	children []game.State
	outcomes []game.Outcome
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func (m mockState) Score() float64 {
	return m.score
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) IsChance() bool {
	return m.chance
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) game.State {
	for i, known := range m.moves {
		if known == move {
			return m.children[i]
		}
	}
	panic("unknown move")
}

func (m mockState) Outcomes() []game.Outcome {
	return m.outcomes
}

// leaf is a terminal state with a fixed score.
func leaf(score float64) mockState {
	return mockState{terminal: true, score: score}
}

func maxNode(children ...game.State) mockState {
	return turnNode(game.Max, children)
}

func minNode(children ...game.State) mockState {
	return turnNode(game.Min, children)
}

func turnNode(player game.Player, children []game.State) mockState {
	moves := make([]game.Move, len(children))
	for i := range children {
		moves[i] = mockMove{id: i}
	}
	return mockState{player: player, moves: moves, children: children}
}

func chanceNode(outcomes ...game.Outcome) mockState {
	return mockState{chance: true, outcomes: outcomes}
}

func TestClassify(t *testing.T) {
	testcases := []struct {
		name  string
		state game.State
		depth int
		want  kind
	}{
		{"terminal state", leaf(0), 3, terminal},
		{"terminal state wins over exhausted depth", leaf(0), 0, terminal},
		{"depth exhausted", maxNode(leaf(1)), 0, cutoff},
		{"chance state", chanceNode(game.Outcome{State: leaf(1), Prob: 1}), 2, chance},
		{"player turn", maxNode(leaf(1)), 2, playerTurn},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, classify(tc.state, tc.depth))
		})
	}
}
