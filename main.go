package main

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game/tictactoe"
	"gametree/searcher"
	"gametree/searcher/agent"
)

type config struct {
	id    int
	name  string
	depth int // 0 plays random
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	runDepthMatchup()
}

// runDepthMatchup pits search agents of increasing depth (and a random
// baseline) against each other on tic-tac-toe and records the results.
func runDepthMatchup() {
	numGames := 10
	configs := []config{
		{id: 1, name: "random", depth: 0},
		{id: 2, name: "depth2", depth: 2},
		{id: 3, name: "depth4", depth: 4},
		{id: 4, name: "depth9", depth: 9},
	}

	writer, err := metrics.NewWriter(filepath.Join("experiments", "depth-matchup"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create experiment writer")
	}

	agentConfigs := make([]metrics.AgentConfig, 0, len(configs))
	for _, cfg := range configs {
		agentConfigs = append(agentConfigs, metrics.AgentConfig{ID: cfg.id, Name: cfg.name, Depth: cfg.depth})
	}
	if err := writer.WriteAgentConfigs(agentConfigs); err != nil {
		log.Fatal().Err(err).Msg("failed to write agent configs")
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	gameID := 0
	for _, maxConfig := range configs {
		for _, minConfig := range configs {
			if maxConfig.id == minConfig.id {
				continue
			}
			log.Info().Msgf("%s (max) vs %s (min)", maxConfig.name, minConfig.name)
			for i := 0; i < numGames; i++ {
				gameID++
				gameMetric, moveMetrics := runGame(maxConfig, minConfig, uint64(gameID))
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         gameID,
					Agent1:     maxConfig.id,
					Agent2:     minConfig.id,
					GameMetric: gameMetric,
				})
				for _, moveMetric := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{Game: gameID, MoveMetric: moveMetric})
				}
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Msgf("finished %d games", gameID)
}

// runGame executes a single game between two agents and returns its metrics
func runGame(maxConfig, minConfig config, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	e := engine.NewLocal(tictactoe.New(), createAgent(maxConfig, seed), createAgent(minConfig, seed+1), seed)
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	return gameMetric, moveMetrics
}

func createAgent(cfg config, seed uint64) agent.Agent {
	if cfg.depth == 0 {
		return agent.NewRandomAgent(seed)
	}
	collector := metrics.NewCollector()
	minimax := searcher.New(searcher.WithMetrics(collector))
	return agent.NewSearchAgent(minimax, cfg.depth, collector)
}
