// Package report implements the diagnostic entry point: shape and head
// summaries of the raw dataset, plus an optional value-count chart for
// the prospective target column.
package report

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// HeadRows is how many data rows Describe previews.
const HeadRows = 5

// Describe logs the shape, column names and a bounded head preview of df.
func Describe(df dataframe.DataFrame, source string, log *slog.Logger) {
	log.Info("raw dataset loaded",
		"source", source,
		"rows", df.Nrow(),
		"cols", df.Ncol(),
		"columns", df.Names(),
	)

	records := df.Records() // first record is the header
	n := min(HeadRows, len(records)-1)
	for i := 1; i <= n; i++ {
		log.Info("head", "row", i-1, "values", strings.Join(records[i], ", "))
	}
}

// PlotBalance writes a PNG bar chart of the value counts of column col
// to path. Cell text is trimmed and lowercased before counting so
// "Yes"/"yes" land in one bar.
func PlotBalance(df dataframe.DataFrame, col, path string) error {
	s := df.Col(col)
	if err := s.Err; err != nil {
		return fmt.Errorf("plot column %s: %w", col, err)
	}

	counts := make(map[string]int)
	for _, rec := range s.Records() {
		key := strings.ToLower(strings.TrimSpace(rec))
		if key == "" {
			key = "(missing)"
		}
		counts[key]++
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	values := make(plotter.Values, len(labels))
	for i, label := range labels {
		values[i] = float64(counts[label])
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s value counts", col)
	p.Y.Label.Text = "rows"

	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("build bar chart: %w", err)
	}
	p.Add(bars)
	p.NominalX(labels...)

	if err := p.Save(5*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart %s: %w", path, err)
	}
	return nil
}
