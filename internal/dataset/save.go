package dataset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
)

// Save writes df as a comma-separated file with a header row to
// dir/filename, overwriting any existing file. The directory is created
// with parents if absent. Returns the full output path.
func Save(df dataframe.DataFrame, dir, filename string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create processed directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	if err := df.WriteCSV(f, dataframe.WriteHeader(true)); err != nil {
		return "", fmt.Errorf("write output file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close output file %s: %w", path, err)
	}
	return path, nil
}
