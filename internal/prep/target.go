package prep

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// TargetName is the fixed canonical name for the resolved label column.
const TargetName = "DEFAULT"

// truthyFalsey maps common textual label representations to 0/1.
// Matching happens on trimmed, lowercased cell text.
var truthyFalsey = map[string]int{
	"yes": 1, "y": 1, "true": 1, "t": 1, "1": 1,
	"no": 0, "n": 0, "false": 0, "f": 0, "0": 0,
}

// FindTargetColumn returns the first df column, in dataset column
// order, whose canonical name matches any canonicalized candidate.
func FindTargetColumn(df dataframe.DataFrame, candidates []string) (string, bool) {
	wanted := make(map[string]bool, len(candidates))
	for _, cand := range candidates {
		wanted[Canonical(cand)] = true
	}

	for _, name := range df.Names() {
		if wanted[Canonical(name)] {
			return name, true
		}
	}
	return "", false
}

// ResolveTarget finds the target column among candidates, renames it to
// DEFAULT and coerces its values to binary integers.
//
// Coercion per value, in order: boolean/lexicon match on the trimmed
// lowercased text, then an independent numeric parse of the original
// cell. Values that survive neither step are missing; their rows are
// dropped, not imputed. Every remaining value must land in {0,1}.
//
// Row order is preserved. Callers observe dropped rows via the returned
// frame's row count.
func ResolveTarget(df dataframe.DataFrame, candidates []string) (dataframe.DataFrame, error) {
	col, ok := FindTargetColumn(df, candidates)
	if !ok {
		return df, &TargetNotFoundError{Candidates: candidates, Columns: df.Names()}
	}

	out := df.Rename(TargetName, col)
	if err := out.Error(); err != nil {
		return df, fmt.Errorf("rename target column %s: %w", col, err)
	}

	records := out.Col(TargetName).Records()
	keep := make([]int, 0, len(records))
	values := make([]int, 0, len(records))
	for i, raw := range records {
		v, ok := coerceLabel(raw)
		if !ok {
			continue
		}
		keep = append(keep, i)
		values = append(values, v)
	}

	if len(keep) < out.Nrow() {
		out = out.Subset(keep)
		if err := out.Error(); err != nil {
			return df, fmt.Errorf("drop rows with missing target: %w", err)
		}
	}

	out = out.Mutate(series.New(values, series.Int, TargetName))
	if err := out.Error(); err != nil {
		return df, fmt.Errorf("coerce target column: %w", err)
	}

	for _, v := range values {
		if v != 0 && v != 1 {
			return df, &TargetDomainError{Value: v}
		}
	}

	return out, nil
}

// coerceLabel converts one raw target cell to 0/1. The second return is
// false when the value is missing or unmappable.
//
// The numeric fallback parses each value independently; non-numeric
// tokens (including NaN/Inf spellings) become missing rather than
// aborting the run. Fractional values truncate toward zero, matching
// an integer cast.
func coerceLabel(raw string) (int, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if v, ok := truthyFalsey[s]; ok {
		return v, true
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}
