package usmap

import (
	"fmt"
	"strconv"
	"strings"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// stateSampleSize caps how many non-null cells per column the state
// detector inspects.
const stateSampleSize = 20

// DetectStateColumn scans columns left to right and returns the first
// whose sampled values contain at least one valid state code. If none
// match it falls back to the first column, which is best effort and may
// be wrong for tables without state data at all.
func DetectStateColumn(t *tbl.Table) string {
	if t.Cols() == 0 {
		return ""
	}
	for c := 0; c < t.Cols(); c++ {
		col := t.ColumnAt(c)
		sampled := 0
		for r := 0; r < col.Len() && sampled < stateSampleSize; r++ {
			v, ok := col.Value(r)
			if !ok {
				continue
			}
			sampled++
			if ValidState(strings.ToUpper(strings.TrimSpace(cellText(v)))) {
				return col.Name()
			}
		}
	}
	return t.ColumnAt(0).Name()
}

// DetectValueColumn returns the first non-state column whose cells are
// uniformly numeric, falling back to the first non-state column when no
// numeric one exists. It fails only when the state column is the sole
// column.
func DetectValueColumn(t *tbl.Table, stateCol string) (string, error) {
	for c := 0; c < t.Cols(); c++ {
		col := t.ColumnAt(c)
		if col.Name() == stateCol {
			continue
		}
		if col.IsNumeric() {
			return col.Name(), nil
		}
	}
	for c := 0; c < t.Cols(); c++ {
		if name := t.ColumnAt(c).Name(); name != stateCol {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no candidate column besides %q", ErrNoValueColumn, stateCol)
}

func cellText(v any) string {
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
