package agent

import (
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher"
)

type searchAgent struct {
	minimax   *searcher.Minimax
	depth     int
	collector metrics.Collector
}

// NewSearchAgent returns an agent that picks moves with a fixed-depth
// expectiminimax search. To collect per-move metrics, pass the same collector
// the searcher was given via WithMetrics; pass nil to collect nothing.
func NewSearchAgent(minimax *searcher.Minimax, depth int, collector metrics.Collector) Agent {
	if collector == nil {
		collector = metrics.NewDummyCollector()
	}
	return searchAgent{minimax: minimax, depth: depth, collector: collector}
}

func (a searchAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	a.collector.Start(a.depth)
	move, _, err := a.minimax.FindBestMove(state, a.depth)
	metric := a.collector.Complete()
	if err != nil {
		return nil, metric, err
	}
	return move, metric, nil
}
