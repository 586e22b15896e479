package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lingometrics/diversutils/measure"
)

// readFileList reads path, one corpus document path per line, skipping
// blank lines (§6's "input_path" line-list file).
func readFileList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file list %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file list %s: %w", path, err)
	}

	return out, nil
}

// writeResult emits the main checkpoint TSV at path, plus the
// *_timing.tsv, *_memory.tsv, and *_discarded.tsv sibling files (§6,
// DESIGN.md's discarded-keys sibling decision).
func writeResult(path string, result *measure.Result) error {
	if err := writeTSV(path, result.Header, result.Rows); err != nil {
		return err
	}

	base := strings.TrimSuffix(path, ".tsv")
	if err := writeTSV(base+"_timing.tsv", result.TimingHeader, result.TimingRows); err != nil {
		return err
	}
	if err := writeTSV(base+"_memory.tsv", result.MemoryHeader, result.MemoryRows); err != nil {
		return err
	}

	return writeDiscarded(base+"_discarded.tsv", result.DiscardedKeys)
}

func writeTSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()

	return w.Error()
}

func writeDiscarded(path string, discarded map[string]uint64) error {
	keys := make([]string, 0, len(discarded))
	for k := range discarded {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, len(keys))
	for i, k := range keys {
		rows[i] = []string{k, strconv.FormatUint(discarded[k], 10)}
	}

	return writeTSV(path, []string{"key", "count"}, rows)
}
