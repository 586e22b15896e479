package measure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/lingometrics/diversutils/distance"
	"github.com/lingometrics/diversutils/diversity"
	"github.com/lingometrics/diversutils/distmatrix"
	"github.com/lingometrics/diversutils/embedding"
	"github.com/lingometrics/diversutils/ingest"
	"github.com/lingometrics/diversutils/mst"
	"github.com/lingometrics/diversutils/typegraph"
	"github.com/lingometrics/diversutils/zipf"
)

// Result is a completed run's accumulated output (§6: "a header row...
// then one row per checkpoint").
type Result struct {
	Header        []string
	Rows          [][]string
	TimingHeader  []string
	TimingRows    [][]string
	MemoryHeader  []string
	MemoryRows    [][]string
	DiscardedKeys map[string]uint64
}

// Driver runs one measurement pass over a corpus file list against a
// loaded embedding index, emitting checkpoints per §4.K's gating
// policy.
type Driver struct {
	cfg     Config
	index   *embedding.Index
	graph   *typegraph.Graph
	backend distance.CosineBackend
	log     *slog.Logger

	sentenceGate *CheckpointGate
	documentGate *CheckpointGate
	sentenceN    atomic.Uint64
	documentN    atomic.Uint64

	checkpointMu sync.Mutex
	haveLast     bool
	lastZipfS    float64
	lastNumNodes int

	rowMu      sync.Mutex
	rows       []Row
	timingRows [][]string
	memoryRows [][]string
}

// NewDriver loads the embedding file named by cfg.EmbeddingPath and
// constructs a fresh Driver ready to Run (§4.K step 1).
func NewDriver(cfg Config, log *slog.Logger) (*Driver, error) {
	if log == nil {
		log = slog.Default()
	}

	idx, err := embedding.Load(cfg.EmbeddingPath)
	if err != nil {
		return nil, fmt.Errorf("measure: load embeddings: %w", err)
	}

	return &Driver{
		cfg:          cfg,
		index:        idx,
		graph:        typegraph.New(idx),
		backend:      distance.Default(),
		log:          log,
		sentenceGate: NewCheckpointGate(cfg.SentenceStep, cfg.SentenceLog10),
		documentGate: NewCheckpointGate(cfg.DocumentStep, cfg.DocumentLog10),
	}, nil
}

// Run ingests every file in the corpus list, in a pool of
// cfg.FileReaderThreads worker goroutines, checkpointing along the way,
// then takes one final snapshot over the whole accumulated graph (§4.K
// steps 2–4).
func (d *Driver) Run(fileList []string) (*Result, error) {
	if len(fileList) == 0 {
		return nil, ErrNoFiles
	}

	threads := d.cfg.FileReaderThreads
	if threads < 1 {
		threads = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(threads)
	for _, path := range fileList {
		path := path
		g.Go(func() error { return d.processFile(path) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := d.checkpoint(); err != nil {
		return nil, fmt.Errorf("measure: final checkpoint: %w", err)
	}

	return d.result(), nil
}

// processFile ingests one corpus file, dispatching to the CUPT or
// JSONL reader by extension (§6), checkpointing whenever the sentence
// gate hits after a sentence and, at the end of the file (its document
// boundary), whenever the document gate hits.
func (d *Driver) processFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("measure: open %s: %w", path, err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".conllu", ".cupt", ".conll":
		if err := d.ingestCUPT(f); err != nil {
			return fmt.Errorf("measure: %s: %w", path, err)
		}
	case ".jsonl", ".json", ".ndjson":
		if err := d.ingestJSONL(f); err != nil {
			return fmt.Errorf("measure: %s: %w", path, err)
		}
	default:
		return fmt.Errorf("measure: %s: %w", path, ErrUnknownExtension)
	}

	n := d.documentN.Add(1)
	if d.documentGate.Hit(n) {
		return d.checkpoint()
	}

	return nil
}

func (d *Driver) ingestCUPT(r *os.File) error {
	reader := ingest.NewCUPTReader(bufio.NewReader(r))
	for {
		sentence, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
		for _, tok := range sentence.Tokens {
			d.graph.Observe(tok.Value(d.cfg.TargetColumn))
		}

		n := d.sentenceN.Add(1)
		if d.sentenceGate.Hit(n) {
			if err := d.checkpoint(); err != nil {
				return err
			}
		}
	}
}

func (d *Driver) ingestJSONL(r *os.File) error {
	reader := ingest.NewJSONLReader(bufio.NewReader(r), d.cfg.ContentKey())
	for {
		rec, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return err
		}
		for _, tok := range strings.Fields(rec.Content) {
			d.graph.Observe(tok)
		}

		n := d.sentenceN.Add(1)
		if d.sentenceGate.Hit(n) {
			if err := d.checkpoint(); err != nil {
				return err
			}
		}
	}
}

// checkpoint recomputes proportions, fits the Zipfian exponent, and
// skips emission when neither s nor the node count changed since the
// last checkpoint (§4.K's dedup policy, §8 scenario 6) — including the
// unconditional final snapshot Run takes after joining every worker.
// It holds the graph lock for the whole snapshot so the distance
// matrix / MST / indices it computes are consistent with the counters
// (§5).
func (d *Driver) checkpoint() error {
	d.checkpointMu.Lock()
	defer d.checkpointMu.Unlock()

	d.graph.Lock()
	defer d.graph.Unlock()

	timer := newStageTimer()

	d.graph.ComputeRelativeProportions()
	n := d.graph.NumNodes()
	p := d.graph.Proportions()
	counts := d.graph.Absolutes()
	timer.split() // proportions

	var s float64
	if n > 0 {
		var err error
		s, err = zipf.Fit(p)
		if err != nil {
			return fmt.Errorf("measure: zipf fit: %w", err)
		}
	}
	timer.split() // zipf

	if d.haveLast && s == d.lastZipfS && n == d.lastNumNodes {
		return nil
	}

	var (
		dAt     diversity.DistanceAt
		tree    *mst.MST
		vectors [][]float32
	)
	enabled := d.cfg.Indices.Enabled
	runIterative := d.cfg.IterativeDistance && needsMatrix(enabled)
	buildMatrix := needsFullMatrix(enabled, d.cfg.IterativeDistance)
	if n > 1 && (buildMatrix || needsFunctional(enabled)) {
		vectors = d.graph.Vectors()

		if buildMatrix {
			m, err := buildDistanceAt(vectors, d.backend, matrixThreads(d.cfg.MatrixThreads))
			if err != nil {
				return fmt.Errorf("measure: distance matrix: %w", err)
			}
			dAt = m
		}
		if needsFunctional(enabled) {
			heap := buildHeap(vectors, d.backend)
			built, err := mst.Build(n, heap)
			if err != nil {
				d.log.Warn("mst build failed, skipping functional indices", "error", err)
			} else {
				tree = built
			}
		}
	}
	timer.split() // matrix

	// When the iterative path handles pairwise/Stirling/Leinster–Cobbold,
	// compute everything else off the (possibly nil) matrix first, then
	// overlay the streamed values so neither path double-counts them.
	computeCfg := d.cfg.Indices
	if runIterative {
		computeCfg = withoutIterativeIndices(computeCfg)
	}
	values := computeIndices(computeCfg, p, counts, d.index.Dim(), dAt, tree, vectors, d.backend)
	if runIterative && n > 1 {
		iterValues, err := d.computeIterative(p, vectors)
		if err != nil {
			return fmt.Errorf("measure: iterative aggregation: %w", err)
		}
		for name, v := range iterValues {
			values[name] = v
		}
	}
	timer.split() // indices

	row := Row{
		SentenceCount: d.sentenceN.Load(),
		DocumentCount: d.documentN.Load(),
		NumNodes:      n,
		ZipfS:         s,
		Values:        values,
	}

	d.rowMu.Lock()
	d.rows = append(d.rows, row)
	d.timingRows = append(d.timingRows, timer.timing)
	d.memoryRows = append(d.memoryRows, timer.memory)
	d.rowMu.Unlock()

	d.haveLast = true
	d.lastZipfS = s
	d.lastNumNodes = n

	d.log.Info("checkpoint", "sentence_count", row.SentenceCount, "document_count", row.DocumentCount, "n_nodes", n, "zipf_s", s)

	return nil
}

func matrixThreads(t int) int {
	if t < 1 {
		return 1
	}

	return t
}

// computeIterative drives the enabled disparity indices' streaming
// aggregators straight off distmatrix.ComputeRowBatch, never
// materialising the full n×n matrix (§4.J's "single-pass streaming
// versions", DESIGN NOTES §9's per-thread-partial-sums recommendation —
// here realised as one reducer goroutine draining completed batches).
func (d *Driver) computeIterative(p []float64, vectors [][]float32) (map[string]float64, error) {
	n := len(vectors)
	indices := d.cfg.Indices

	var aggregators []diversity.RowAggregator
	var names []string
	if indices.On(IndexPairwise) {
		aggregators = append(aggregators, diversity.NewPairwiseAggregator(n))
		names = append(names, IndexPairwise)
	}
	if indices.On(IndexStirling) {
		aggregators = append(aggregators, diversity.NewStirlingAggregator(p, indices.A(IndexStirling, 1), indices.B(IndexStirling, 1)))
		names = append(names, IndexStirling)
	}
	if indices.On(IndexLeinsterCobbold) {
		aggregators = append(aggregators, diversity.NewLeinsterCobboldAggregator(p, indices.A(IndexLeinsterCobbold, 1)))
		names = append(names, IndexLeinsterCobbold)
	}
	if len(aggregators) == 0 {
		return map[string]float64{}, nil
	}

	threads := matrixThreads(d.cfg.RowThreads)
	batch := threads
	for i := 0; i < n; i += batch {
		size := batch
		if i+size > n {
			size = n - i
		}
		rows, err := distmatrix.ComputeRowBatch(vectors, i, size, threads, d.backend)
		if err != nil {
			return nil, err
		}
		for b, row := range rows {
			for _, agg := range aggregators {
				agg.ConsumeRow(i+b, row)
			}
		}
	}

	out := make(map[string]float64, len(aggregators))
	for i, agg := range aggregators {
		out[names[i]] = agg.Finalize()
	}

	return out, nil
}

func (d *Driver) result() *Result {
	indices := d.cfg.Indices
	header := headerColumns(indices)

	d.rowMu.Lock()
	defer d.rowMu.Unlock()

	rows := make([][]string, len(d.rows))
	for i, r := range d.rows {
		rows[i] = formatRow(r, indices)
	}

	timingHeader := append([]string{"checkpoint"}, stageOrder...)
	memoryHeader := append([]string{"checkpoint"}, stageOrder...)
	timingRows := make([][]string, len(d.timingRows))
	memoryRows := make([][]string, len(d.memoryRows))
	for i := range d.timingRows {
		timingRows[i] = append([]string{strconv.Itoa(i)}, d.timingRows[i]...)
		memoryRows[i] = append([]string{strconv.Itoa(i)}, d.memoryRows[i]...)
	}

	discarded := make(map[string]uint64)
	for _, e := range d.index.DiscardedKeys() {
		discarded[e.Key] = e.Value
	}

	return &Result{
		Header:        header,
		Rows:          rows,
		TimingHeader:  timingHeader,
		TimingRows:    timingRows,
		MemoryHeader:  memoryHeader,
		MemoryRows:    memoryRows,
		DiscardedKeys: discarded,
	}
}
