package embedding

import (
	"sync"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/sortedarray"
)

// Index is the process-wide, read-only-after-load key→vector structure
// (§4.D), plus the discarded-keys diagnostics array for misses (§3).
type Index struct {
	dim     int
	buffer  []float32
	arr     *sortedarray.SortedArray[string, *Entry]
	missed  *sortedarray.SortedArray[string, uint64]
	missMu  sync.Mutex
	backend distance.CosineBackend
}

// Dim returns the embedding dimensionality.
func (idx *Index) Dim() int { return idx.dim }

// Len returns the number of loaded entries.
func (idx *Index) Len() int { return idx.arr.Len() }

// KeyToIndex returns the entry's slot and true, or false and records a
// miss in the discarded-keys index (§4.D).
func (idx *Index) KeyToIndex(key string) (int, bool) {
	i, ok := idx.arr.KeyToIndex(key)
	if ok {
		return i, true
	}
	idx.recordMiss(key)

	return 0, false
}

// Entry returns the entry at slot i. The caller must have obtained i
// from KeyToIndex in the same generation (the index never mutates after
// Load, so any slot obtained post-load remains valid forever).
func (idx *Index) Entry(i int) *Entry {
	return idx.arr.At(i).Value
}

// Lookup is a convenience wrapper combining KeyToIndex and Entry.
func (idx *Index) Lookup(key string) (*Entry, bool) {
	i, ok := idx.KeyToIndex(key)
	if !ok {
		return nil, false
	}

	return idx.Entry(i), true
}

// recordMiss increments key's discarded-keys count, or inserts it at 1
// if this is the first miss. The read-modify-write is guarded by its own
// mutex (§5: "discarded-keys index (own mutex)") rather than composed
// from missed's two separately-locked KeyToIndex/Insert calls, so two
// concurrent misses of the same key can't both observe "absent" and each
// insert a count of 1, losing one of the two occurrences.
func (idx *Index) recordMiss(key string) {
	idx.missMu.Lock()
	defer idx.missMu.Unlock()

	if i, ok := idx.missed.KeyToIndex(key); ok {
		elem := idx.missed.At(i)
		idx.missed.Insert(key, elem.Value+1, sortedarray.ModeOverwriteIfPresent)

		return
	}
	idx.missed.Insert(key, 1, sortedarray.ModeOnlyIfAbsent)
}

// DiscardedKeys returns a snapshot of keys missing from the embedding
// index together with their occurrence counts, for diagnostics (§3).
func (idx *Index) DiscardedKeys() []sortedarray.Element[string, uint64] {
	return idx.missed.Elements()
}

// FindClosest returns the entry minimising cosine distance to key's own
// vector, skipping key itself (§4.D). Complexity: O(N·D).
func (idx *Index) FindClosest(key string) (*Entry, float32, error) {
	target, ok := idx.Lookup(key)
	if !ok {
		return nil, 0, ErrKeyNotFound
	}
	if idx.arr.Len() < 2 {
		return nil, 0, ErrEmptyIndex
	}

	var (
		best     *Entry
		bestDist = float32(3) // above the [0,2] contract range
	)
	for _, elem := range idx.arr.Elements() {
		if elem.Key == key {
			continue
		}
		d := idx.backend.Cosine(target.Vector, elem.Value.Vector)
		if d < bestDist {
			bestDist = d
			best = elem.Value
		}
	}
	if best == nil {
		return nil, 0, ErrEmptyIndex
	}

	return best, bestDist, nil
}
