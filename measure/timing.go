package measure

import (
	"runtime"
	"strconv"
	"time"
)

// stageTimer accumulates nanosecond wall-clock deltas across the named
// stages of one checkpoint (§4.K: "two sibling TSVs with per-stage
// wall-clock and RSS deltas"), plus the runtime heap allocation
// (runtime.MemStats.Alloc) read at the end of each stage. The memory
// column is that absolute reading, not a delta and not RSS.
type stageTimer struct {
	lastSplit time.Time
	timing    []string
	memory    []string
}

// stageOrder fixes the checkpoint's stage columns: proportions
// (recomputing relative frequencies), zipf (fitting s), matrix
// (distance matrix / heap / MST construction), indices (evaluating the
// enabled diversity functions).
var stageOrder = []string{"proportions", "zipf", "matrix", "indices"}

func newStageTimer() *stageTimer {
	return &stageTimer{lastSplit: time.Now()}
}

// split records one stage's elapsed wall-clock since the previous split
// (or since the timer was created, for the first stage), and the
// current heap allocation in bytes.
func (t *stageTimer) split() {
	now := time.Now()
	t.timing = append(t.timing, formatNanos(now.Sub(t.lastSplit)))
	t.lastSplit = now

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	t.memory = append(t.memory, formatBytes(ms.Alloc))
}

func formatNanos(d time.Duration) string { return strconv.FormatInt(d.Nanoseconds(), 10) }
func formatBytes(b uint64) string        { return strconv.FormatUint(b, 10) }
