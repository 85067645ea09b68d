package deid

import (
	"reflect"
	"testing"

	"github.com/dshills/scrub/internal/table"
	"github.com/dshills/scrub/internal/terms"
)

func patients() *table.Table {
	return &table.Table{
		Headers: []string{"PatientName", "DOB", "Notes"},
		Rows: [][]string{
			{"Alice", "1990-01-01", "seen Alice"},
			{"Bob", "1991-02-02", "ok"},
		},
	}
}

func TestMatchNames(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		terms   []string
		want    []string
	}{
		{
			name:    "default terms",
			headers: []string{"PatientName", "DOB", "Notes"},
			terms:   []string{"name", "dob"},
			want:    []string{"PatientName", "DOB"},
		},
		{
			name:    "order preserved",
			headers: []string{"DOB", "Notes", "PatientName"},
			terms:   []string{"name", "dob"},
			want:    []string{"DOB", "PatientName"},
		},
		{
			name:    "normalized headers",
			headers: []string{"  Patient Name  ", "dob"},
			terms:   []string{"name"},
			want:    []string{"  Patient Name  "},
		},
		{
			name:    "column matches once despite multiple terms",
			headers: []string{"NameDOB"},
			terms:   []string{"name", "dob"},
			want:    []string{"NameDOB"},
		},
		{
			name:    "no matches",
			headers: []string{"ID", "Amount"},
			terms:   []string{"name", "dob"},
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &table.Table{Headers: tt.headers}
			got := MatchNames(tbl, terms.New(tt.terms...))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MatchNames() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatchNamesNilTable(t *testing.T) {
	if got := MatchNames(nil, terms.New()); got != nil {
		t.Errorf("MatchNames(nil) = %v, want nil", got)
	}
}

func TestMatchValuesLeakedName(t *testing.T) {
	// "Alice" appears inside the Notes cell "seen Alice"; one leaking cell
	// is enough to flag the whole column.
	got := MatchValues(patients(), []string{"PatientName", "DOB"})
	want := []string{"Notes"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchValues() = %v, want %v", got, want)
	}
}

func TestMatchValuesExactDuplicateColumn(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"FullName", "Patient", "Visit"},
		Rows: [][]string{
			{"Carol", "Carol", "2024-01-05"},
			{"Dave", "Dave", "2024-02-06"},
		},
	}
	got := MatchValues(tbl, []string{"FullName"})
	want := []string{"Patient"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchValues() = %v, want %v", got, want)
	}
}

func TestMatchValuesEmptySelection(t *testing.T) {
	if got := MatchValues(patients(), nil); got != nil {
		t.Errorf("MatchValues(empty selection) = %v, want nil", got)
	}
}

func TestMatchValuesAllEmptySelectedColumn(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"Name", "Notes"},
		Rows: [][]string{
			{"", "something"},
			{"", "else"},
		},
	}
	if got := MatchValues(tbl, []string{"Name"}); got != nil {
		t.Errorf("MatchValues(all-empty column) = %v, want nil", got)
	}
}

func TestMatchValuesEmptyCellsNeverMatch(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"Name", "Spare"},
		Rows: [][]string{
			{"Eve", ""},
			{"", ""},
		},
	}
	if got := MatchValues(tbl, []string{"Name"}); got != nil {
		t.Errorf("MatchValues() = %v, want nil (empty cells excluded)", got)
	}
}

func TestMatchValuesStringRepresentation(t *testing.T) {
	// Numeric 7 and text "7" are the same cell string, so they match. This
	// is the accepted false-positive mode of the heuristic.
	tbl := &table.Table{
		Headers: []string{"PatientID", "Ward"},
		Rows: [][]string{
			{"7", "7"},
			{"8", "3"},
		},
	}
	got := MatchValues(tbl, []string{"PatientID"})
	want := []string{"Ward"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchValues() = %v, want %v", got, want)
	}
}

func TestMatchValuesExcludesSelection(t *testing.T) {
	tbl := &table.Table{
		Headers: []string{"Name", "Alias"},
		Rows:    [][]string{{"Frank", "Frank"}},
	}
	got := MatchValues(tbl, []string{"Name", "Alias"})
	if got != nil {
		t.Errorf("MatchValues() = %v, want nil (all columns selected)", got)
	}
}
