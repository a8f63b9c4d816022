package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Policy     string
	Playouts   int // Budget given to the search
	Duration   time.Duration
	Rollouts   int
	Expansions int
}

type MoveMetric struct {
	Step   int
	Player int // 0 moves first
	Action string
	SearchMetric
}

type GameMetric struct {
	Winner     int // -1 on a draw
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

type Collector interface {
	Start(policy string, playouts int)
	AddRollout()
	AddExpansion()
	Complete() SearchMetric
}

type collector struct {
	policy     string
	playouts   int
	startTime  time.Time
	rollouts   atomic.Int32
	expansions atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(policy string, playouts int) {
	m.startTime = time.Now()
	m.policy = policy
	m.playouts = playouts
	m.rollouts.Store(0)
	m.expansions.Store(0)
}

func (m *collector) AddRollout() {
	m.rollouts.Add(1)
}

func (m *collector) AddExpansion() {
	m.expansions.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Policy:     m.policy,
		Playouts:   m.playouts,
		Duration:   time.Since(m.startTime),
		Rollouts:   int(m.rollouts.Load()),
		Expansions: int(m.expansions.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(policy string, playouts int) {}
func (m *dummyCollector) AddRollout()                       {}
func (m *dummyCollector) AddExpansion()                     {}
func (m *dummyCollector) Complete() SearchMetric            { return SearchMetric{} }
