package inmemory

import (
	"sync"

	"gridcourier/internal/domain/delivery"
)

type AlgorithmStats struct {
	Runs          uint64 `json:"runs"`
	Success       uint64 `json:"success"`
	Failure       uint64 `json:"failure"`
	Replans       uint64 `json:"replans"`
	NodesExpanded uint64 `json:"nodes_expanded"`
	TotalCost     uint64 `json:"total_cost"`
}

type Snapshot struct {
	RunTotal        uint64                    `json:"run_total"`
	RunSuccess      uint64                    `json:"run_success"`
	RunFailure      uint64                    `json:"run_failure"`
	InvalidRequests uint64                    `json:"invalid_requests"`
	ByAlgorithm     map[string]AlgorithmStats `json:"by_algorithm"`
	ByFailureReason map[string]uint64         `json:"by_failure_reason"`
}

type Recorder struct {
	mu       sync.Mutex
	success  uint64
	failure  uint64
	invalid  uint64
	byAlgo   map[string]AlgorithmStats
	byReason map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAlgo:   map[string]AlgorithmStats{},
		byReason: map[string]uint64{},
	}
}

func (r *Recorder) RecordRun(algorithm string, m delivery.Metrics) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats := r.byAlgo[algorithm]
	stats.Runs++
	stats.Replans += uint64(m.Replans)
	stats.NodesExpanded += uint64(m.NodesExpanded)
	if m.Success {
		r.success++
		stats.Success++
		stats.TotalCost += uint64(m.TotalCost)
	} else {
		r.failure++
		stats.Failure++
		r.byReason[string(m.Reason)]++
	}
	r.byAlgo[algorithm] = stats
}

func (r *Recorder) RecordInvalidRequest() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalid++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		RunSuccess:      r.success,
		RunFailure:      r.failure,
		RunTotal:        r.success + r.failure,
		InvalidRequests: r.invalid,
		ByAlgorithm:     make(map[string]AlgorithmStats, len(r.byAlgo)),
		ByFailureReason: make(map[string]uint64, len(r.byReason)),
	}
	for k, v := range r.byAlgo {
		out.ByAlgorithm[k] = v
	}
	for k, v := range r.byReason {
		out.ByFailureReason[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
