package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gametree/experiments/metrics"
	"gametree/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks uniformly among the
// legal moves.
func NewRandomAgent(seed uint64) Agent {
	return randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a randomAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, metrics.SearchMetric{}, fmt.Errorf("no legal moves to pick from")
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
