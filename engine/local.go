package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/searcher/agent"
)

// Local drives a game to completion in process: agents pick moves at
// player-turn states and chance states resolve by sampling an outcome.
type Local struct {
	state  game.State
	agents map[game.Player]agent.Agent
	rng    *rand.Rand
}

func NewLocal(state game.State, maxAgent, minAgent agent.Agent, seed uint64) *Local {
	if maxAgent == nil || minAgent == nil {
		panic("need an agent for each role")
	}
	return &Local{
		state: state,
		agents: map[game.Player]agent.Agent{
			game.Max: maxAgent,
			game.Min: minAgent,
		},
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Run plays until a terminal state or MaxMoves and returns the final state
// together with game and per-move metrics.
func (e *Local) Run() (game.State, metrics.GameMetric, []metrics.MoveMetric, error) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	steps := 0
	for ; steps < MaxMoves && !e.state.IsTerminal(); steps++ {
		if e.state.IsChance() {
			next, err := e.resolve(e.state)
			if err != nil {
				return e.state, metrics.GameMetric{}, moveMetrics, err
			}
			log.Debug().Msgf("step %d: chance resolved", steps)
			e.state = next
			continue
		}

		mover := e.state.Player()
		move, searchMetric, err := e.agents[mover].FindMove(e.state)
		if err != nil {
			return e.state, metrics.GameMetric{}, moveMetrics, fmt.Errorf("agent for %s failed: %w", mover, err)
		}
		log.Debug().Msgf("step %d: %s plays %v", steps, mover, move)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         steps,
			Player:       mover.String(),
			SearchMetric: searchMetric,
		})
		e.state = e.state.Play(move)
	}

	if !e.state.IsTerminal() {
		return e.state, metrics.GameMetric{}, moveMetrics, fmt.Errorf("no terminal state after %d moves", MaxMoves)
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     winner(e.state),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
		TotalMoves: steps,
	}
	log.Info().Msgf("game over after %d moves, favoring %s", steps, gameMetric.Winner)
	return e.state, gameMetric, moveMetrics, nil
}

// winner names the role the final static score favors.
func winner(state game.State) string {
	score := state.Score()
	switch {
	case score > 0:
		return game.Max.String()
	case score < 0:
		return game.Min.String()
	default:
		return "draw"
	}
}

// resolve samples one outcome of a chance state by weight.
func (e *Local) resolve(state game.State) (game.State, error) {
	outcomes := state.Outcomes()
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("no outcomes at a chance state")
	}

	roll := e.rng.Float64()
	acc := 0.0
	for _, outcome := range outcomes {
		acc += outcome.Prob
		if roll < acc {
			return outcome.State, nil
		}
	}
	// The distribution may sum to slightly below 1; fall back to the last outcome
	return outcomes[len(outcomes)-1].State, nil
}
