package agent

import (
	"gametree/experiments/metrics"
	"gametree/game"
)

type Agent interface {
	// FindMove returns the move the agent chooses at a player-turn state,
	// together with search metrics (zero if the agent does not collect any).
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}
