package prep

import (
	"reflect"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "already canonical",
			input: "bank_balance",
			want:  "bank_balance",
		},
		{
			name:  "simple lowercase",
			input: "Income",
			want:  "income",
		},
		{
			name:  "space separated",
			input: "Customer ID",
			want:  "customer_id",
		},
		{
			name:  "trailing punctuation stripped",
			input: "Defaulted?",
			want:  "defaulted",
		},
		{
			name:  "surrounding whitespace",
			input: "  Annual Salary  ",
			want:  "annual_salary",
		},
		{
			name:  "run of mixed separators collapses",
			input: "Loan - Amount ($)",
			want:  "loan_amount",
		},
		{
			name:  "leading and trailing underscores stripped",
			input: "__cust_id__",
			want:  "cust_id",
		},
		{
			name:  "digits preserved",
			input: "Q1 2024 Balance",
			want:  "q1_2024_balance",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "?!#",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonical(tt.input)
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.input, got, tt.want)
			}

			// Canonicalizing twice must equal canonicalizing once
			if again := Canonical(got); again != got {
				t.Errorf("Canonical not idempotent: Canonical(%q) = %q", got, again)
			}
		})
	}
}

func TestNormalizeColumns(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"Customer ID", "Annual Salary", "Defaulted?"},
		{"1", "55000", "Yes"},
		{"2", "61000", "No"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))
	if df.Error() != nil {
		t.Fatalf("LoadRecords error: %v", df.Error())
	}

	out := NormalizeColumns(df)

	want := []string{"customer_id", "annual_salary", "defaulted"}
	if got := out.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeColumns names = %v, want %v", got, want)
	}

	// Input frame must be untouched
	if got := df.Names(); !reflect.DeepEqual(got, []string{"Customer ID", "Annual Salary", "Defaulted?"}) {
		t.Errorf("NormalizeColumns mutated input names: %v", got)
	}

	// Values pass through unchanged
	if got := out.Col("annual_salary").Records(); !reflect.DeepEqual(got, []string{"55000", "61000"}) {
		t.Errorf("NormalizeColumns changed values: %v", got)
	}
}

func TestNormalizeColumns_AlreadyCanonical(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"income", "default"},
		{"100", "1"},
	}, dataframe.DetectTypes(false), dataframe.DefaultType(series.String))

	out := NormalizeColumns(df)
	if got := out.Names(); !reflect.DeepEqual(got, []string{"income", "default"}) {
		t.Errorf("NormalizeColumns names = %v, want unchanged", got)
	}
}
