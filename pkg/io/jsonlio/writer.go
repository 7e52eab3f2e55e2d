package jsonlio

import (
	"encoding/json"
	"io"

	iox "github.com/wdm0006/usmap/pkg/io/ioutils"
	tbl "github.com/wdm0006/usmap/pkg/table"
)

// WriteAll writes a Table as JSON lines, one object per row. Null cells
// are omitted from their row's object.
func WriteAll(path string, t *tbl.Table) error {
	out, err := iox.Create(path)
	if err != nil {
		return err
	}
	if err := Write(out, t); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func Write(w io.Writer, t *tbl.Table) error {
	enc := json.NewEncoder(w)
	names := t.ColumnNames()
	for r := 0; r < t.Rows(); r++ {
		obj := make(map[string]any, len(names))
		for c, n := range names {
			if v, ok := t.ColumnAt(c).Value(r); ok {
				obj[n] = v
			}
		}
		if err := enc.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}
