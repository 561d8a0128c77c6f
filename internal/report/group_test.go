package report

import (
	"testing"

	clierrors "github.com/salmonumbrella/csv2html-cli/internal/errors"
	"github.com/salmonumbrella/csv2html-cli/internal/table"
)

func sampleTable() *table.Table {
	return &table.Table{
		Path:    "zoo.csv",
		Columns: []string{"Task", "Name", "onnx"},
		Rows: []table.Row{
			{"Task": "A", "Name": "m1", "onnx": "http://x/1.onnx"},
			{"Task": "A", "Name": "m2", "onnx": ""},
			{"Task": "B", "Name": "m3", "onnx": "http://x/2.onnx"},
		},
	}
}

func TestGroupByFirstAppearanceOrder(t *testing.T) {
	groups, err := GroupBy(sampleTable(), "Task")
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Key != "A" || groups[1].Key != "B" {
		t.Errorf("group order = %q, %q; want A, B", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Rows) != 2 {
		t.Errorf("group A rows = %d, want 2", len(groups[0].Rows))
	}
	if len(groups[1].Rows) != 1 {
		t.Errorf("group B rows = %d, want 1", len(groups[1].Rows))
	}
	if groups[0].Rows[0]["Name"] != "m1" || groups[0].Rows[1]["Name"] != "m2" {
		t.Errorf("rows inside a group must keep input order: %v", groups[0].Rows)
	}
}

func TestGroupByInterleavedKeys(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"Task", "Name"},
		Rows: []table.Row{
			{"Task": "B", "Name": "m1"},
			{"Task": "A", "Name": "m2"},
			{"Task": "B", "Name": "m3"},
		},
	}

	groups, err := GroupBy(tbl, "Task")
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if groups[0].Key != "B" || groups[1].Key != "A" {
		t.Errorf("group order = %q, %q; want B, A", groups[0].Key, groups[1].Key)
	}
	if len(groups[0].Rows) != 2 {
		t.Errorf("interleaved rows should land in the same group, got %d", len(groups[0].Rows))
	}
}

func TestStripOrderPrefix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Image Classification", "Image Classification"},
		{"12.Object Detection", "Object Detection"},
		{"  3.  Face Recognition  ", "Face Recognition"},
		{"Image Classification", "Image Classification"},
		{"2nd Stage", "2nd Stage"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripOrderPrefix(tt.in); got != tt.want {
			t.Errorf("StripOrderPrefix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanGroupColumnMergesPrefixedKeys(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"Task", "Name"},
		Rows: []table.Row{
			{"Task": "1. Image Classification", "Name": "m1"},
			{"Task": "Image Classification", "Name": "m2"},
			{"Task": "2. Object Detection", "Name": "m3"},
		},
	}

	CleanGroupColumn(tbl, "Task")
	groups, err := GroupBy(tbl, "Task")
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}

	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2 (prefixed and bare keys merge)", len(groups))
	}
	if groups[0].Key != "Image Classification" || len(groups[0].Rows) != 2 {
		t.Errorf("groups[0] = %q with %d rows", groups[0].Key, len(groups[0].Rows))
	}
	if groups[1].Key != "Object Detection" {
		t.Errorf("groups[1] = %q, want Object Detection", groups[1].Key)
	}
}

func TestCleanGroupColumnMissingColumnIsNoop(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"Name"},
		Rows:    []table.Row{{"Name": "m1"}},
	}
	CleanGroupColumn(tbl, "Task")
	if tbl.Rows[0]["Name"] != "m1" {
		t.Error("table must be untouched when the column is absent")
	}
}

func TestGroupByMissingColumn(t *testing.T) {
	_, err := GroupBy(sampleTable(), "Category")
	if !clierrors.IsMissingColumnError(err) {
		t.Fatalf("expected MissingColumnError, got %v", err)
	}
}

func TestGroupByEmptyKeyIsAGroup(t *testing.T) {
	tbl := &table.Table{
		Columns: []string{"Task", "Name"},
		Rows: []table.Row{
			{"Task": "", "Name": "m1"},
			{"Task": "A", "Name": "m2"},
		},
	}

	groups, err := GroupBy(tbl, "Task")
	if err != nil {
		t.Fatalf("GroupBy: %v", err)
	}
	if len(groups) != 2 || groups[0].Key != "" {
		t.Errorf("empty key should form its own group, got %v", groups)
	}
}
