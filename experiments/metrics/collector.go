package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric summarizes one search: how deep it was allowed to go and how
// many nodes of each kind it visited.
type SearchMetric struct {
	Depth     int
	Duration  time.Duration
	Decisions int
	Chances   int
	Terminals int
	Cutoffs   int
}

// MoveMetric ties a search to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric summarizes one complete game.
type GameMetric struct {
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(depth int)
	AddDecision()
	AddChance()
	AddTerminal()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	decisions atomic.Int64
	chances   atomic.Int64
	terminals atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.startTime = time.Now()
	c.depth = depth
	c.decisions.Store(0)
	c.chances.Store(0)
	c.terminals.Store(0)
	c.cutoffs.Store(0)
}

func (c *collector) AddDecision() {
	c.decisions.Add(1)
}

func (c *collector) AddChance() {
	c.chances.Add(1)
}

func (c *collector) AddTerminal() {
	c.terminals.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:     c.depth,
		Duration:  time.Since(c.startTime),
		Decisions: int(c.decisions.Load()),
		Chances:   int(c.chances.Load()),
		Terminals: int(c.terminals.Load()),
		Cutoffs:   int(c.cutoffs.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector so the searcher never has to
// check for a nil one.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(depth int)        {}
func (c *dummyCollector) AddDecision()           {}
func (c *dummyCollector) AddChance()             {}
func (c *dummyCollector) AddTerminal()           {}
func (c *dummyCollector) AddCutoff()             {}
func (c *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
