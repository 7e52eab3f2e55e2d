package xlsxio

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	rows := [][]any{
		{"state", "value"},
		{"CA", 100.5},
		{"TX", 200},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.xlsx")
	writeWorkbook(t, path)

	f, err := Load(path, ReaderOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if f.Rows() != 2 || f.Cols() != 2 {
		t.Fatalf("unexpected shape %dx%d", f.Rows(), f.Cols())
	}
	sc, _ := f.Column("state")
	if sc.Kind() != tbl.KindString {
		t.Fatalf("state should be string, got %v", sc.Kind())
	}
	vc, _ := f.Column("value")
	if v, ok := vc.Float(0); !ok || v != 100.5 {
		t.Fatalf("got %v %v", v, ok)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), ReaderOptions{}); err == nil {
		t.Fatal("expected error for missing workbook")
	}
}
