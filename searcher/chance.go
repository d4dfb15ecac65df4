package searcher

import (
	"fmt"
	"math"

	"gametree/game"
)

// expect evaluates a chance state: the probability-weighted sum of its
// outcomes, each valued at depth-1. The distribution must be complete -
// probabilities non-negative and summing to 1 within the configured
// tolerance - so that sibling expectations stay comparable.
func (m *Minimax) expect(state game.State, depth int) (float64, error) {
	m.metrics.AddChance()

	outcomes := state.Outcomes()
	if len(outcomes) == 0 {
		return 0, fmt.Errorf("%w: no outcomes at a chance state", ErrContractViolation)
	}

	var expected, total float64
	for _, outcome := range outcomes {
		if outcome.Prob < 0 {
			return 0, fmt.Errorf("%w: negative outcome probability %v", ErrContractViolation, outcome.Prob)
		}
		value, err := m.value(outcome.State, depth-1)
		if err != nil {
			return 0, err
		}
		expected += outcome.Prob * value
		total += outcome.Prob
	}
	if math.Abs(total-1) > m.tolerance {
		return 0, fmt.Errorf("%w: outcome probabilities sum to %v, want 1", ErrContractViolation, total)
	}
	return expected, nil
}
