// Package xlsxio reads OOXML spreadsheets into Tables via excelize.
package xlsxio

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wdm0006/usmap/pkg/io/csvio"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

type ReaderOptions struct {
	Sheet      string // empty = first sheet
	SampleRows int
}

// Load reads one sheet of an .xlsx workbook into a Table. The first row
// is the header; column kinds are inferred the same way as for CSV.
func Load(path string, opt ReaderOptions) (*tbl.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheet := opt.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return tbl.New()
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return csvio.FromRecords(rows, opt.SampleRows)
}
