package csvio

import (
	"encoding/csv"
	"io"
	"strconv"

	iox "github.com/wdm0006/usmap/pkg/io/ioutils"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

type WriterOptions struct {
	Delimiter rune // default ','
}

// WriteAll writes a Table to a delimited text file with a header row.
func WriteAll(path string, t *tbl.Table, opt WriterOptions) error {
	out, err := iox.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, t, opt); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// Write streams a Table as delimited text to w.
func Write(w io.Writer, t *tbl.Table, opt WriterOptions) error {
	cw := csv.NewWriter(w)
	if opt.Delimiter != 0 {
		cw.Comma = opt.Delimiter
	}
	if err := cw.Write(t.ColumnNames()); err != nil {
		return err
	}
	row := make([]string, t.Cols())
	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			row[c] = formatCell(t.ColumnAt(c), r)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCell(c *tbl.Column, r int) string {
	v, ok := c.Value(r)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	}
	return ""
}
