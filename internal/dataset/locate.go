// Package dataset handles locating, loading and persisting the tabular
// data the pipeline works on. Frames are gota DataFrames; all transforms
// downstream operate on copies, so nothing here is re-read after load.
package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoInput is returned when the raw directory holds no CSV file.
var ErrNoInput = errors.New("no csv input found")

// FindRawCSV returns the lexicographically first *.csv file in dir.
// os.ReadDir already sorts entries by filename.
func FindRawCSV(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("reading raw directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		return filepath.Join(dir, entry.Name()), nil
	}

	return "", fmt.Errorf("%w: no *.csv files in %s", ErrNoInput, dir)
}
