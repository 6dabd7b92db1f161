package prep

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/go-gota/gota/dataframe"

	"github.com/avlund/credprep/internal/config"
	"github.com/avlund/credprep/internal/dataset"
)

// Result summarizes one completed pipeline run.
type Result struct {
	SourcePath  string
	OutputPath  string
	Rows        int
	Cols        int
	Columns     []string
	RowsDropped int
}

// Run executes the full preprocessing pipeline:
// locate raw file, load, normalize schema, resolve target, prune
// identifier columns, fix currency types, validate, persist.
//
// The run aborts on the first error; nothing partial is written.
func Run(cfg *config.Config, log *slog.Logger) (*Result, error) {
	rawPath, err := dataset.FindRawCSV(cfg.Paths.RawDataDir)
	if err != nil {
		return nil, err
	}

	df, err := dataset.Load(rawPath)
	if err != nil {
		return nil, err
	}
	log.Info("raw dataset loaded", "source", rawPath, "rows", df.Nrow(), "cols", df.Ncol())

	df = NormalizeColumns(df)

	before := df.Nrow()
	df, err = ResolveTarget(df, cfg.Schema.TargetCandidates)
	if err != nil {
		return nil, err
	}
	rowsDropped := before - df.Nrow()
	if rowsDropped > 0 {
		log.Warn("dropped rows with missing target", "rows", rowsDropped)
	}

	df = PruneColumns(df, cfg.Schema.DropIfPresent, log)
	df = FixCurrencyColumns(df, cfg.Schema.CurrencyColumns)

	if err := validateTarget(df); err != nil {
		return nil, err
	}

	outPath, err := dataset.Save(df, cfg.Paths.ProcessedDataDir, cfg.Paths.ProcessedFilename)
	if err != nil {
		return nil, err
	}
	log.Info("saved processed dataset",
		"path", outPath,
		"rows", df.Nrow(),
		"cols", df.Ncol(),
		"columns", df.Names(),
	)

	return &Result{
		SourcePath:  rawPath,
		OutputPath:  outPath,
		Rows:        df.Nrow(),
		Cols:        df.Ncol(),
		Columns:     df.Names(),
		RowsDropped: rowsDropped,
	}, nil
}

// validateTarget re-checks the final frame: DEFAULT must still exist
// and hold exactly two distinct values.
func validateTarget(df dataframe.DataFrame) error {
	if !slices.Contains(df.Names(), TargetName) {
		return ErrTargetMissing
	}

	col := df.Col(TargetName)
	if err := col.Err; err != nil {
		return fmt.Errorf("read target column: %w", err)
	}

	seen := make(map[string]bool)
	var distinct []int
	for _, rec := range col.Records() {
		if seen[rec] {
			continue
		}
		seen[rec] = true
		if n, err := strconv.Atoi(rec); err == nil {
			distinct = append(distinct, n)
		}
	}
	if len(seen) != 2 {
		return &TargetCardinalityError{Distinct: distinct}
	}
	return nil
}
