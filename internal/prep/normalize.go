// Package prep implements the core dataset transforms: schema
// normalization, target resolution, identifier pruning and currency
// type fixes, plus the orchestrator that runs them in order.
//
// Every transform takes a DataFrame and returns a new one; callers
// never see partial mutation.
package prep

import (
	"regexp"
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// nonAlnumRun matches maximal runs of characters outside [0-9a-zA-Z].
var nonAlnumRun = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// Canonical converts a raw column header to its canonical form:
// trimmed, lowercased, non-alphanumeric runs collapsed to a single
// underscore, no leading or trailing underscore. Idempotent.
func Canonical(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnumRun.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}

// NormalizeColumns returns a copy of df with every column name in
// canonical form. Values are untouched.
func NormalizeColumns(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	canonical := make([]string, len(names))
	for i, name := range names {
		canonical[i] = Canonical(name)
	}

	out := df.Copy()
	if err := out.SetNames(canonical...); err != nil {
		// SetNames only errors on a length mismatch; canonical was
		// built from the same Names call, so pass the frame through.
		return df.Copy()
	}
	return out
}
