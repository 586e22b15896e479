package measure

import (
	"fmt"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/distheap"
	"github.com/lingometrics/diversutils/distmatrix"
	"github.com/lingometrics/diversutils/diversity"
	"github.com/lingometrics/diversutils/mst"
)

// Row is one checkpoint's counters plus every enabled diversity value,
// in AllIndexNames order (§4.K: "one TSV row of counters + all enabled
// diversity values").
type Row struct {
	SentenceCount uint64
	DocumentCount uint64
	NumNodes      int
	ZipfS         float64
	Values        map[string]float64
}

// headerColumns returns the fixed counter columns followed by every
// enabled index name, in registry order.
func headerColumns(indices IndexSet) []string {
	cols := []string{"sentence_count", "document_count", "n_nodes", "zipf_s"}
	for _, name := range AllIndexNames() {
		if indices.On(name) {
			cols = append(cols, name)
		}
	}

	return cols
}

// formatRow renders a Row as a TSV record matching headerColumns' order.
func formatRow(r Row, indices IndexSet) []string {
	out := []string{
		fmt.Sprintf("%d", r.SentenceCount),
		fmt.Sprintf("%d", r.DocumentCount),
		fmt.Sprintf("%d", r.NumNodes),
		fmt.Sprintf("%g", r.ZipfS),
	}
	for _, name := range AllIndexNames() {
		if indices.On(name) {
			out = append(out, fmt.Sprintf("%g", r.Values[name]))
		}
	}

	return out
}

// computeIndices evaluates every enabled index against a single
// checkpoint's snapshot, in the three tiers §4.J distinguishes:
// frequency-only, evenness, then distance-weighted (disparity and
// functional), the latter two skipped entirely when nothing in the
// vector requires a distance matrix or MST (the caller passes nil for
// whichever it didn't build).
func computeIndices(indices IndexSet, p []float64, counts []uint64, numDimensions int, d diversity.DistanceAt, tree *mst.MST, vectors [][]float32, backend distance.CosineBackend) map[string]float64 {
	out := make(map[string]float64, len(AllIndexNames()))
	n := len(p)

	if indices.On(IndexShannon) {
		out[IndexShannon] = diversity.Shannon(p)
	}
	if indices.On(IndexShannonHill) {
		out[IndexShannonHill] = diversity.HillFromShannon(diversity.Shannon(p))
	}
	if indices.On(IndexSimpson) {
		out[IndexSimpson] = diversity.Simpson(p)
	}
	if indices.On(IndexSimpsonDominance) {
		out[IndexSimpsonDominance] = diversity.SimpsonDominance(p)
	}
	if indices.On(IndexBergerParker) {
		out[IndexBergerParker] = diversity.BergerParker(p)
	}
	if indices.On(IndexHill) {
		out[IndexHill] = diversity.Hill(p, indices.A(IndexHill, 1))
	}
	if indices.On(IndexRenyi) {
		out[IndexRenyi] = diversity.Renyi(p, indices.A(IndexRenyi, 1))
	}
	if indices.On(IndexPatilTaillie) {
		out[IndexPatilTaillie] = diversity.PatilTaillie(p, indices.A(IndexPatilTaillie, 1))
	}
	if indices.On(IndexQLogarithmic) {
		out[IndexQLogarithmic] = diversity.QLogarithmic(p, indices.A(IndexQLogarithmic, 1))
	}
	if indices.On(IndexGood) {
		out[IndexGood] = diversity.Good(p, indices.A(IndexGood, 1), indices.B(IndexGood, 1))
	}
	if indices.On(IndexBrillouin) {
		out[IndexBrillouin] = diversity.Brillouin(counts)
	}
	if indices.On(IndexMcIntosh) {
		out[IndexMcIntosh] = diversity.McIntosh(counts)
	}

	if indices.On(IndexHeip) {
		if v, err := diversity.Heip(p); err == nil {
			out[IndexHeip] = v
		}
	}
	if indices.On(IndexPielou1969) {
		if v, err := diversity.Pielou1969(p); err == nil {
			out[IndexPielou1969] = v
		}
	}
	if indices.On(IndexPielou1975) {
		if v, err := diversity.Pielou1975(p); err == nil {
			out[IndexPielou1975] = v
		}
	}
	if indices.On(IndexPielou1977) {
		out[IndexPielou1977] = diversity.Pielou1977(p, numDimensions)
	}
	if indices.On(IndexWilliams1964) {
		out[IndexWilliams1964] = diversity.Williams1964(p)
	}
	if indices.On(IndexCamargo1993) {
		out[IndexCamargo1993] = diversity.Camargo1993(p)
	}
	if indices.On(IndexAlatalo1981) {
		if v, err := diversity.Alatalo1981(p); err == nil {
			out[IndexAlatalo1981] = v
		}
	}
	if indices.On(IndexMolinari1989) {
		if v, err := diversity.Molinari1989(p); err == nil {
			out[IndexMolinari1989] = v
		}
	}
	if indices.On(IndexBulla1994O) {
		out[IndexBulla1994O] = diversity.Bulla1994O(p)
	}
	if indices.On(IndexBulla1994E) {
		if v, err := diversity.Bulla1994E(p); err == nil {
			out[IndexBulla1994E] = v
		}
	}
	if indices.On(IndexSmithWilson1996) {
		out[IndexSmithWilson1996] = diversity.SmithWilson1996Evar(p)
	}
	if indices.On(IndexJunge1994) {
		var total uint64
		for _, c := range counts {
			total += c
		}
		out[IndexJunge1994] = diversity.Junge1994(p, total)
	}
	if indices.On(IndexHillEvennessRatio) {
		out[IndexHillEvennessRatio] = diversity.HillEvennessRatio(p, indices.A(IndexHillEvennessRatio, 1), indices.B(IndexHillEvennessRatio, 2))
	}

	if d != nil {
		if indices.On(IndexPairwise) {
			out[IndexPairwise] = diversity.Pairwise(d, n)
		}
		if indices.On(IndexStirling) {
			out[IndexStirling] = diversity.Stirling(d, p, indices.A(IndexStirling, 1), indices.B(IndexStirling, 1))
		}
		if indices.On(IndexRicottaSzeidl) {
			out[IndexRicottaSzeidl] = diversity.RicottaSzeidl(d, p, indices.A(IndexRicottaSzeidl, 1))
		}
		if indices.On(IndexChaoEtAl) {
			out[IndexChaoEtAl] = diversity.ChaoEtAl(d, p, indices.A(IndexChaoEtAl, 1)).Index
		}
		if indices.On(IndexScheiner) {
			out[IndexScheiner] = diversity.Scheiner(d, p, indices.A(IndexScheiner, 1)).Index
		}
		if indices.On(IndexLeinsterCobbold) {
			out[IndexLeinsterCobbold] = diversity.LeinsterCobbold(d, p, indices.A(IndexLeinsterCobbold, 1))
		}
	}

	if indices.On(IndexFunctionalEven) && tree != nil {
		if v, err := diversity.FunctionalEvenness(tree, p); err == nil {
			out[IndexFunctionalEven] = v
		}
	}
	if indices.On(IndexFunctionalDisp) && vectors != nil {
		if v, err := diversity.FunctionalDispersion(vectors, p, backend); err == nil {
			out[IndexFunctionalDisp] = v
		}
	}
	if indices.On(IndexFunctionalDiverg) && vectors != nil {
		if v, err := diversity.FunctionalDivergence(vectors, p, backend); err == nil {
			out[IndexFunctionalDiverg] = v
		}
	}

	return out
}

// buildDistanceAt produces the distance source disparity indices read
// from, preferring the already-built full matrix (§4.F) when the caller
// asked for one; iterative aggregators bypass this entirely and are
// driven straight off distmatrix.ComputeRowBatch in driver.go.
func buildDistanceAt(vectors [][]float32, backend distance.CosineBackend, threads int) (*distmatrix.Matrix, error) {
	return distmatrix.ComputeFull(vectors, backend, threads, distmatrix.FP32)
}

// buildHeap constructs the f64 pairwise-distance heap the MST builder
// consumes (§4.G, §4.H).
func buildHeap(vectors [][]float32, backend distance.CosineBackend) *distheap.Heap {
	n := len(vectors)

	return distheap.New(n, func(i, j int) float64 {
		return float64(backend.Cosine(vectors[i], vectors[j]))
	})
}
