package main

import (
	"flag"
	"fmt"

	"github.com/lingometrics/diversutils/ingest"
	"github.com/lingometrics/diversutils/measure"
)

// parseArgs builds a measure.Config from long-form --key=value flags
// (§6). Every diversity index in measure.AllIndexNames gets its own
// --enable_<name>/--<name>_alpha/--<name>_beta trio registered before
// parsing, so the flag set stays in lockstep with the registry instead
// of a hand-maintained flag per index. Unrecognised flags are fatal,
// matching the stdlib flag package's own behaviour.
func parseArgs(args []string) (measure.Config, error) {
	fs := flag.NewFlagSet("diversutils", flag.ContinueOnError)

	w2vPath := fs.String("w2v_path", "", "path to the pretrained word2vec embedding file")
	inputPath := fs.String("input_path", "", "path to the line-list file naming corpus documents")
	outputPath := fs.String("output_path", "", "path to the output TSV")
	targetColumn := fs.String("target_column", "UD_FORM", "UD_FORM|UD_LEMMA|UD_MWE")
	jsonlContentKey := fs.String("jsonl_content_key", "", "JSON object key holding a JSONL record's text (default: text)")

	fileReaderThreads := fs.Int("num_file_reading_threads", 1, "file-reader worker pool size")
	matrixThreads := fs.Int("num_matrix_threads", 1, "distance-matrix worker pool size")
	rowThreads := fs.Int("num_row_threads", 1, "row-aggregator worker pool size")

	sentenceStep := fs.Uint64("sentence_count_recompute_step", 0, "checkpoint every N sentences (0 disables)")
	sentenceLog10 := fs.Bool("sentence_count_recompute_step_log10", false, "checkpoint at N*10^k sentences instead of linear steps")
	documentStep := fs.Uint64("document_count_recompute_step", 0, "checkpoint every N documents (0 disables)")
	documentLog10 := fs.Bool("document_count_recompute_step_log10", false, "checkpoint at N*10^k documents instead of linear steps")

	iterative := fs.Bool("enable_iterative_distance_computation", false, "stream pairwise/Stirling/Leinster-Cobbold off row batches instead of a materialised matrix")

	indices := measure.NewIndexSet()
	enableFlags := make(map[string]*bool, len(measure.AllIndexNames()))
	alphaFlags := make(map[string]*float64, len(measure.AllIndexNames()))
	betaFlags := make(map[string]*float64, len(measure.AllIndexNames()))
	for _, name := range measure.AllIndexNames() {
		enableFlags[name] = fs.Bool("enable_"+name, false, "enable the "+name+" index")
		alphaFlags[name] = fs.Float64(name+"_alpha", 0, "alpha parameter for "+name)
		betaFlags[name] = fs.Float64(name+"_beta", 0, "beta parameter for "+name)
	}

	if err := fs.Parse(args); err != nil {
		return measure.Config{}, err
	}
	if fs.NArg() > 0 {
		return measure.Config{}, fmt.Errorf("unrecognised arguments: %v", fs.Args())
	}

	col, err := parseTargetColumn(*targetColumn)
	if err != nil {
		return measure.Config{}, err
	}

	for name := range enableFlags {
		if *enableFlags[name] {
			indices.Enabled[name] = true
		}
		if v := *alphaFlags[name]; v != 0 {
			indices.Alpha[name] = v
		}
		if v := *betaFlags[name]; v != 0 {
			indices.Beta[name] = v
		}
	}

	return measure.Config{
		EmbeddingPath:     *w2vPath,
		InputListPath:     *inputPath,
		OutputPath:        *outputPath,
		TargetColumn:      col,
		JSONLContentKey:   *jsonlContentKey,
		FileReaderThreads: *fileReaderThreads,
		MatrixThreads:     *matrixThreads,
		RowThreads:        *rowThreads,
		SentenceStep:      *sentenceStep,
		SentenceLog10:     *sentenceLog10,
		DocumentStep:      *documentStep,
		DocumentLog10:     *documentLog10,
		IterativeDistance: *iterative,
		Indices:           indices,
	}, nil
}

func parseTargetColumn(s string) (ingest.TargetColumn, error) {
	switch s {
	case "UD_FORM":
		return ingest.TargetForm, nil
	case "UD_LEMMA":
		return ingest.TargetLemma, nil
	case "UD_MWE":
		return ingest.TargetMWE, nil
	default:
		return 0, fmt.Errorf("target_column: unknown value %q (want UD_FORM|UD_LEMMA|UD_MWE)", s)
	}
}
