package searcher

import (
	"errors"

	"gametree/game"
)

// DefaultTolerance bounds how far a chance state's outcome probabilities may
// drift from summing to 1 before the distribution is rejected.
const DefaultTolerance = 1e-6

var (
	// ErrContractViolation reports a broken game implementation: no legal
	// moves at a player-turn state, a bad outcome distribution at a chance
	// state, or a negative search depth.
	ErrContractViolation = errors.New("game contract violation")

	// ErrUndefinedQuery reports a best-move query that has no answer: zero
	// remaining depth, a terminal root, or a chance root leave no move to
	// evaluate.
	ErrUndefinedQuery = errors.New("undefined query")
)

// kind classifies a search node. Exactly one kind applies to any (state,
// depth) pair: terminal and cutoff nodes absorb, chance and player-turn
// nodes spawn one child per outcome or move at depth-1.
type kind uint8

const (
	terminal kind = iota
	cutoff
	chance
	playerTurn
)

func classify(state game.State, depth int) kind {
	switch {
	case state.IsTerminal():
		return terminal
	case depth == 0:
		return cutoff
	case state.IsChance():
		return chance
	default:
		return playerTurn
	}
}
