package searcher

import (
	"fmt"
	"math"

	"gametree/game"
)

// bestMove evaluates a player-turn state: each legal move's successor is
// valued at depth-1, and the extremal child (max when Max is to move, min
// otherwise) decides the state's value. Strict comparison keeps the first
// extremal move on ties.
func (m *Minimax) bestMove(state game.State, depth int) (game.Move, float64, error) {
	m.metrics.AddDecision()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, 0, fmt.Errorf("%w: no legal moves at a non-terminal state", ErrContractViolation)
	}

	maximizing := state.Player() == game.Max
	best := moves[0]
	bestValue := math.Inf(1)
	if maximizing {
		bestValue = math.Inf(-1)
	}

	for _, move := range moves {
		value, err := m.value(state.Play(move), depth-1)
		if err != nil {
			return nil, 0, err
		}
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			best = move
			bestValue = value
		}
	}
	return best, bestValue, nil
}
