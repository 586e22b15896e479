package distmatrix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lingometrics/diversutils/distance"
)

// ComputeRow computes, single-threaded, the cosine distance of node i to
// every node in vectors (§4.F).
func ComputeRow(vectors [][]float32, i int, backend distance.CosineBackend) []float32 {
	n := len(vectors)
	out := make([]float32, n)
	for j := 0; j < n; j++ {
		if j == i {
			continue
		}
		out[j] = backend.Cosine(vectors[i], vectors[j])
	}

	return out
}

// ComputeRowBatch produces batchSize consecutive rows starting at
// iStart, in parallel across threads worker goroutines shared across the
// whole batch (§4.F). Requires batchSize ≤ threads.
//
// This feeds the iterative diversity aggregators: a batch of rows can be
// consumed by a reducer while the next batch is computed (DESIGN NOTES
// §9's message-passing-to-a-single-reducer recommendation — the caller
// owns that reduction; this function only produces the rows).
func ComputeRowBatch(vectors [][]float32, iStart, batchSize, threads int, backend distance.CosineBackend) ([][]float32, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}
	if batchSize > threads {
		return nil, ErrBatchExceedsThreads
	}

	n := len(vectors)
	rows := make([][]float32, batchSize)
	for b := range rows {
		rows[b] = make([]float32, n)
	}

	g, _ := errgroup.WithContext(context.Background())
	total := batchSize * n
	for worker := 0; worker < threads; worker++ {
		worker := worker
		g.Go(func() error {
			// Round-robin over the batch's (row, column) cells, so all
			// threads workers share the whole batch.
			for k := worker; k < total; k += threads {
				b, j := k/n, k%n
				i := iStart + b
				if j == i {
					continue
				}
				rows[b][j] = backend.Cosine(vectors[i], vectors[j])
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}
