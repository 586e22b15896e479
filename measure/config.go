package measure

import "github.com/lingometrics/diversutils/ingest"

// IndexSet is the enabled/parametrised subset of AllIndexNames a run
// should compute (§6: "a flag whose value is '1' enables the
// feature... --<index>_alpha/_beta").
type IndexSet struct {
	Enabled map[string]bool
	Alpha   map[string]float64
	Beta    map[string]float64
}

// NewIndexSet returns an IndexSet with every index disabled.
func NewIndexSet() IndexSet {
	return IndexSet{
		Enabled: make(map[string]bool),
		Alpha:   make(map[string]float64),
		Beta:    make(map[string]float64),
	}
}

// On reports whether name is enabled.
func (s IndexSet) On(name string) bool { return s.Enabled[name] }

// A returns name's alpha parameter, or def if unset.
func (s IndexSet) A(name string, def float64) float64 {
	if v, ok := s.Alpha[name]; ok {
		return v
	}

	return def
}

// B returns name's beta parameter, or def if unset.
func (s IndexSet) B(name string, def float64) float64 {
	if v, ok := s.Beta[name]; ok {
		return v
	}

	return def
}

// Config is one measurement run's full set of inputs (§4.K).
type Config struct {
	EmbeddingPath   string
	InputListPath   string
	OutputPath      string
	TargetColumn    ingest.TargetColumn
	JSONLContentKey string

	FileReaderThreads int
	MatrixThreads     int
	RowThreads        int

	SentenceStep  uint64
	SentenceLog10 bool
	DocumentStep  uint64
	DocumentLog10 bool

	IterativeDistance bool

	Indices IndexSet
}

// ContentKey returns the JSONL content key, defaulting to "text" when
// unset (§6).
func (c Config) ContentKey() string {
	if c.JSONLContentKey == "" {
		return "text"
	}

	return c.JSONLContentKey
}
