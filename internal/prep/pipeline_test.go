package prep

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/avlund/credprep/internal/config"
	"github.com/avlund/credprep/internal/dataset"
)

func pipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "raw"), 0o755); err != nil {
		t.Fatal(err)
	}
	return &config.Config{
		Paths: config.PathsConfig{
			RawDataDir:        filepath.Join(dir, "raw"),
			ProcessedDataDir:  filepath.Join(dir, "processed"),
			ProcessedFilename: "clean.csv",
		},
		Schema: config.SchemaConfig{
			TargetCandidates: []string{"Defaulted?"},
			DropIfPresent:    []string{"Customer ID"},
			CurrencyColumns:  []string{"bank_balance", "annual_salary", "loan_amount"},
		},
	}
}

func writeRaw(t *testing.T, cfg *config.Config, name, content string) {
	t.Helper()
	path := filepath.Join(cfg.Paths.RawDataDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readOutput(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return records
}

func TestRun_EndToEnd(t *testing.T) {
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "loans.csv",
		"Customer ID,Income,Defaulted?\n"+
			"1,50000,True\n"+
			"2,30000,False\n"+
			"3,45000,True\n")

	result, err := Run(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Booleans are never ambiguous, so no rows are dropped
	if result.RowsDropped != 0 {
		t.Errorf("RowsDropped = %d, want 0", result.RowsDropped)
	}
	if result.Rows != 3 {
		t.Errorf("Rows = %d, want 3", result.Rows)
	}
	if want := []string{"income", "DEFAULT"}; !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want %v", result.Columns, want)
	}

	records := readOutput(t, result.OutputPath)
	if len(records) != 4 {
		t.Fatalf("output rows = %d, want 4 (header + 3)", len(records))
	}
	if !reflect.DeepEqual(records[0], []string{"income", "DEFAULT"}) {
		t.Errorf("output header = %v, want [income DEFAULT]", records[0])
	}
	wantLabels := []string{"1", "0", "1"}
	for i, want := range wantLabels {
		if got := records[i+1][1]; got != want {
			t.Errorf("output row %d DEFAULT = %q, want %q", i, got, want)
		}
	}
}

func TestRun_PicksFirstCSVLexicographically(t *testing.T) {
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "b_loans.csv", "Defaulted?\nyes\nno\n")
	writeRaw(t, cfg, "a_loans.csv", "Income,Defaulted?\n10,yes\n20,no\n")

	result, err := Run(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if filepath.Base(result.SourcePath) != "a_loans.csv" {
		t.Errorf("SourcePath = %s, want a_loans.csv", result.SourcePath)
	}
	if want := []string{"income", "DEFAULT"}; !reflect.DeepEqual(result.Columns, want) {
		t.Errorf("Columns = %v, want %v", result.Columns, want)
	}
}

func TestRun_NoInput(t *testing.T) {
	cfg := pipelineConfig(t)

	_, err := Run(cfg, discardLogger())
	if !errors.Is(err, dataset.ErrNoInput) {
		t.Errorf("Run() error = %v, want ErrNoInput", err)
	}
}

func TestRun_MissingTarget(t *testing.T) {
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "loans.csv", "Income,Age\n100,40\n200,50\n")

	_, err := Run(cfg, discardLogger())
	var notFound *TargetNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("Run() error = %v, want TargetNotFoundError", err)
	}
}

func TestRun_NonBinaryCardinality(t *testing.T) {
	// Every label maps to 1; the final sanity check must reject a
	// single-valued target.
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "loans.csv", "Income,Defaulted?\n100,yes\n200,yes\n")

	_, err := Run(cfg, discardLogger())
	var cardinality *TargetCardinalityError
	if !errors.As(err, &cardinality) {
		t.Errorf("Run() error = %v, want TargetCardinalityError", err)
	}
}

func TestRun_DropsMissingLabelRowsAndCoercesCurrency(t *testing.T) {
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "loans.csv",
		"Cust_ID,Bank Balance,Defaulted?\n"+
			"1,\"$1,200.50\",Yes\n"+
			"2,$950,No\n"+
			"3,N/A,unknown\n")
	cfg.Schema.DropIfPresent = []string{"Cust_ID"}

	result, err := Run(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.RowsDropped != 1 {
		t.Errorf("RowsDropped = %d, want 1", result.RowsDropped)
	}

	records := readOutput(t, result.OutputPath)
	if !reflect.DeepEqual(records[0], []string{"bank_balance", "DEFAULT"}) {
		t.Errorf("output header = %v, want [bank_balance DEFAULT]", records[0])
	}
	if len(records) != 3 {
		t.Fatalf("output rows = %d, want 3 (header + 2)", len(records))
	}
	if records[1][1] != "1" || records[2][1] != "0" {
		t.Errorf("DEFAULT column = [%s %s], want [1 0]", records[1][1], records[2][1])
	}
}

func TestRun_OverwritesExistingOutput(t *testing.T) {
	cfg := pipelineConfig(t)
	writeRaw(t, cfg, "loans.csv", "Income,Defaulted?\n100,yes\n200,no\n")

	if err := os.MkdirAll(cfg.Paths.ProcessedDataDir, 0o755); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(cfg.Paths.ProcessedDataDir, cfg.Paths.ProcessedFilename)
	if err := os.WriteFile(outPath, []byte("stale content\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := Run(cfg, discardLogger())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	records := readOutput(t, result.OutputPath)
	if !reflect.DeepEqual(records[0], []string{"income", "DEFAULT"}) {
		t.Errorf("output header = %v, stale file not overwritten?", records[0])
	}
}
