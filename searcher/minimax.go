package searcher

import (
	"fmt"

	"gametree/experiments/metrics"
	"gametree/game"
)

type Option func(m *Minimax)

// WithTolerance overrides the tolerance used to check that a chance state's
// outcome probabilities sum to 1.
func WithTolerance(tolerance float64) Option {
	return func(m *Minimax) {
		if tolerance > 0 {
			m.tolerance = tolerance
		}
	}
}

// WithMetrics instruments the search with the given collector. The searcher
// only counts visited nodes; bracketing a search with Start and Complete is
// the caller's business.
func WithMetrics(collector metrics.Collector) Option {
	return func(m *Minimax) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

// Minimax is a depth-limited expectiminimax searcher over the game contract:
// player-turn states take the max or min over their children depending on the
// mover's role, chance states take the probability-weighted expectation, and
// terminal or depth-exhausted states take the state's static score. The
// search is a pure synchronous recursion with no shared state between calls.
type Minimax struct {
	tolerance float64
	metrics   metrics.Collector
}

func New(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		tolerance: DefaultTolerance,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindBestMove returns the move judged best for the player at state, together
// with its value, searching forward up to depth plies. When several moves
// achieve the extremal value, the first such move in LegalMoves order wins,
// so repeated calls return the identical move.
func (m *Minimax) FindBestMove(state game.State, depth int) (game.Move, float64, error) {
	if depth < 0 {
		return nil, 0, fmt.Errorf("%w: negative depth %d", ErrContractViolation, depth)
	}
	if depth == 0 {
		return nil, 0, fmt.Errorf("%w: no move to evaluate at depth 0", ErrUndefinedQuery)
	}
	if state.IsTerminal() {
		return nil, 0, fmt.Errorf("%w: no move to evaluate at a terminal state", ErrUndefinedQuery)
	}
	if state.IsChance() {
		return nil, 0, fmt.Errorf("%w: no move to choose at a chance state", ErrUndefinedQuery)
	}

	return m.bestMove(state, depth)
}

// Value computes the value of state on the fixed reference scale (positive
// favors Max), searching forward up to depth plies. Depth is decremented at
// every descent, chance resolutions included.
func (m *Minimax) Value(state game.State, depth int) (float64, error) {
	if depth < 0 {
		return 0, fmt.Errorf("%w: negative depth %d", ErrContractViolation, depth)
	}
	return m.value(state, depth)
}

func (m *Minimax) value(state game.State, depth int) (float64, error) {
	switch classify(state, depth) {
	case terminal:
		m.metrics.AddTerminal()
		return state.Score(), nil
	case cutoff:
		m.metrics.AddCutoff()
		return state.Score(), nil
	case chance:
		return m.expect(state, depth)
	default:
		_, value, err := m.bestMove(state, depth)
		return value, err
	}
}
