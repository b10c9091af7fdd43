package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	Depth          int
	Goroutines     int
	Duration       time.Duration
	Nodes          int64
	Leaves         int64
	TerminalLeaves int64 // Leaves scored as a win or loss rather than by the heuristic
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf(terminal bool)
	Complete() SearchMetrics
}

type collector struct {
	depth          int
	goroutines     int
	startTime      time.Time
	nodes          atomic.Int64
	leaves         atomic.Int64
	terminalLeaves atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.terminalLeaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf(terminal bool) {
	m.leaves.Add(1)
	if terminal {
		m.terminalLeaves.Add(1)
	}
}

func (m *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Depth:          m.depth,
		Goroutines:     m.goroutines,
		Duration:       time.Since(m.startTime),
		Nodes:          m.nodes.Load(),
		Leaves:         m.leaves.Load(),
		TerminalLeaves: m.terminalLeaves.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddLeaf(terminal bool)       {}
func (m *dummyCollector) Complete() SearchMetrics     { return SearchMetrics{} }
