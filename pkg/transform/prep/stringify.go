package prep

import (
	"context"
	"strconv"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// ToString rewrites a column of any kind as a string column. Nulls stay
// null; numeric and bool cells are formatted.
type ToString struct{ Column string }

func (t *ToString) Name() string { return "to_string" }

func (t *ToString) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.Column)
	if !ok || c.Kind() == tbl.KindString {
		return f, nil
	}
	out := tbl.NewColumn(c.Name(), tbl.KindString)
	for i := 0; i < c.Len(); i++ {
		v, ok := c.Value(i)
		if !ok {
			out.AppendNull()
			continue
		}
		switch x := v.(type) {
		case string:
			_ = out.Append(x)
		case bool:
			_ = out.Append(strconv.FormatBool(x))
		case int64:
			_ = out.Append(strconv.FormatInt(x, 10))
		case float64:
			_ = out.Append(strconv.FormatFloat(x, 'g', -1, 64))
		}
	}
	return f, f.ReplaceColumn(t.Column, out)
}
