package distmatrix

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lingometrics/diversutils/distance"
)

// ComputeFull builds the full n×n distance matrix over vectors,
// partitioning the row range [0, n) round-robin across threads worker
// goroutines (§4.F). Each worker fills the upper triangle for its rows
// and mirrors into the lower triangle; the diagonal stays zero.
func ComputeFull(vectors [][]float32, backend distance.CosineBackend, threads int, mode FPMode) (*Matrix, error) {
	if threads < 1 {
		return nil, ErrInvalidThreads
	}

	n := len(vectors)
	m := newMatrix(n, mode)
	if n == 0 {
		return m, nil
	}

	g, _ := errgroup.WithContext(context.Background())
	for worker := 0; worker < threads; worker++ {
		worker := worker
		g.Go(func() error {
			// Round-robin row assignment: worker w takes rows
			// w, w+threads, w+2*threads, ...
			for i := worker; i < n; i += threads {
				for j := i + 1; j < n; j++ {
					d := float64(backend.Cosine(vectors[i], vectors[j]))
					m.set(i, j, d)
					m.set(j, i, d)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return m, nil
}
