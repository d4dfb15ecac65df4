package engine

import (
	"gametree/experiments/metrics"
	"gametree/game"
)

// MaxMoves caps a run so a broken game cannot loop forever.
const MaxMoves = 10000

type Engine interface {
	// Run plays a game till a terminal state or a max number of moves is reached
	Run() (final game.State, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
