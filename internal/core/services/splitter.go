package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/levante-framework/levante-surveys-sub001/internal/core/domain"
	"github.com/levante-framework/levante-surveys-sub001/internal/core/ports/driving"
	"github.com/levante-framework/levante-surveys-sub001/internal/logger"
)

// Ensure Splitter implements the interface.
var _ driving.Splitter = (*Splitter)(nil)

// Splitter splits a combined translation CSV into one file per value of
// the configured column, preserving the header row and the original row
// order within each group.
type Splitter struct {
	cfg domain.SplitConfig
}

// NewSplitter creates a splitter.
func NewSplitter(cfg domain.SplitConfig) *Splitter {
	return &Splitter{cfg: cfg}
}

// Split reads the combined CSV and writes one CSV per group into the
// configured output directory. Groups are returned in first-appearance
// order.
func (s *Splitter) Split(_ context.Context, combinedPath string) ([]driving.SplitResult, error) {
	f, err := os.Open(combinedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", combinedPath, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", combinedPath, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", combinedPath, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", combinedPath, domain.ErrInvalidInput)
	}

	header := records[0]
	column := -1
	for i, name := range header {
		if strings.EqualFold(name, s.cfg.Column) {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("column %q not found in %s: %w", s.cfg.Column, combinedPath, domain.ErrInvalidInput)
	}

	// Group rows, keeping first-appearance order for determinism.
	var order []string
	groups := make(map[string][][]string)
	for _, row := range records[1:] {
		group := strings.TrimSpace(row[column])
		if group == "" {
			group = "ungrouped"
		}
		if _, seen := groups[group]; !seen {
			order = append(order, group)
		}
		groups[group] = append(groups[group], row)
	}

	if err := os.MkdirAll(s.cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	results := make([]driving.SplitResult, 0, len(order))
	for _, group := range order {
		out := filepath.Join(s.cfg.OutDir, safeFileName(group)+".csv")
		if err := writeCSV(out, header, groups[group]); err != nil {
			return nil, err
		}
		logger.Debug("split: wrote %d row(s) to %s", len(groups[group]), out)
		results = append(results, driving.SplitResult{
			Group: group,
			File:  out,
			Rows:  len(groups[group]),
		})
	}
	return results, nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
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

// safeFileName replaces characters that would escape the output
// directory or break on common filesystems.
func safeFileName(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	return replacer.Replace(name)
}
