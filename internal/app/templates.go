package app

import (
	"fmt"
	"log/slog"
	"os"

	"lifegrid/pkg/life"
)

// LoadTemplates reads a YAML template file and registers every entry as a
// named pattern. An empty path is a no-op.
func LoadTemplates(path string, logger *slog.Logger) error {
	if path == "" {
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open templates: %w", err)
	}
	defer f.Close()

	ts, err := life.LoadTemplates(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	life.RegisterTemplates(ts)
	for _, t := range ts {
		rows, cols := t.Bounds()
		logger.Debug("registered template", "name", t.Name, "cells", len(t.Cells), "rows", rows, "cols", cols)
	}
	logger.Info("loaded templates", "path", path, "count", len(ts))
	return nil
}
