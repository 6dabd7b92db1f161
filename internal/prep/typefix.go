package prep

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// numericRegex validates that a string is a valid numeric format after
// currency cleanup. Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseCurrency attempts to read a currency-formatted cell as a number.
// It strips common currency symbols, thousands separators and
// accounting parentheses (negative) before parsing. The second return
// is false when the cleaned text is not numeric.
func ParseCurrency(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Accounting format "(123.45)" means negative
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if negative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FixCurrencyColumns coerces the configured currency columns from text
// to numbers, best effort. Cells that fail to parse keep their original
// text; no error is ever raised. Columns outside the configured set, or
// already numeric, pass through unchanged.
func FixCurrencyColumns(df dataframe.DataFrame, columns []string) dataframe.DataFrame {
	wanted := make(map[string]bool, len(columns))
	for _, name := range columns {
		wanted[Canonical(name)] = true
	}

	out := df
	for _, name := range df.Names() {
		if !wanted[Canonical(name)] {
			continue
		}

		col := out.Col(name)
		if col.Type() != series.String {
			continue
		}

		out = fixColumn(out, name, col.Records())
	}
	return out
}

// fixColumn rewrites one currency column. When every cell parses the
// column becomes a float series; with any holdouts it stays a string
// series where parsed cells are re-rendered without symbols or
// separators and holdouts keep their original text.
func fixColumn(df dataframe.DataFrame, name string, records []string) dataframe.DataFrame {
	floats := make([]float64, len(records))
	mixed := make([]string, len(records))
	parsedAll := true
	parsedAny := false

	for i, raw := range records {
		v, ok := ParseCurrency(raw)
		if !ok {
			parsedAll = false
			mixed[i] = raw
			continue
		}
		parsedAny = true
		floats[i] = v
		mixed[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	switch {
	case parsedAll:
		return df.Mutate(series.New(floats, series.Float, name))
	case parsedAny:
		return df.Mutate(series.New(mixed, series.String, name))
	default:
		return df
	}
}
