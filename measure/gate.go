package measure

import "sync"

// CheckpointGate decides whether a growing counter has crossed its next
// reporting threshold (§4.K: "per per-sentence or per-document gate
// hit, with optional log10 spacing"). A zero step disables the gate
// entirely: Hit always reports false.
//
// Linear spacing fires every step counts: step, 2·step, 3·step, ...
// Log10 spacing fires at step, 10·step, 100·step, ..., so checkpoints
// thin out geometrically over a long-running corpus instead of
// flooding the output TSV once counts grow large.
type CheckpointGate struct {
	mu            sync.Mutex
	step          uint64
	log10         bool
	nextThreshold uint64
}

// NewCheckpointGate builds a gate firing every step counts (or, with
// log10 set, every step·10^k counts).
func NewCheckpointGate(step uint64, log10 bool) *CheckpointGate {
	return &CheckpointGate{step: step, log10: log10, nextThreshold: step}
}

// Hit reports whether counter has reached or passed the gate's next
// threshold, advancing that threshold if so. Concurrent callers racing
// with the same or nearby counter values see exactly one true.
func (g *CheckpointGate) Hit(counter uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.step == 0 || counter < g.nextThreshold {
		return false
	}
	if g.log10 {
		g.nextThreshold *= 10
	} else {
		g.nextThreshold += g.step
	}

	return true
}
