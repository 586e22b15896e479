// Command diversutils runs one measurement pass over a corpus against
// a pretrained embedding, emitting a checkpointed TSV of lexical
// diversity indices (§6).
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lingometrics/diversutils/measure"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// kindError tags a fatal error with one of §7's error kinds, so the
// single stderr line identifies what failed without a stack trace.
type kindError struct {
	kind string
	err  error
}

func (e kindError) Error() string { return fmt.Sprintf("fatal (%s): %v", e.kind, e.err) }
func (e kindError) Unwrap() error { return e.err }

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return kindError{kind: "ParseFormat", err: err}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	fileList, err := readFileList(cfg.InputListPath)
	if err != nil {
		return kindError{kind: "Io", err: err}
	}

	driver, err := measure.NewDriver(cfg, logger)
	if err != nil {
		return kindError{kind: "EmbeddingLoadError", err: err}
	}

	result, err := driver.Run(fileList)
	if err != nil {
		return kindError{kind: "LogicInvariant", err: err}
	}

	if err := writeResult(cfg.OutputPath, result); err != nil {
		return kindError{kind: "Io", err: err}
	}

	return nil
}
