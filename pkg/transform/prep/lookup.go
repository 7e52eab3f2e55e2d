package prep

import (
	"context"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// Lookup appends a string column As holding Map[value] for each cell of
// the From column. Cells without a mapping become null.
type Lookup struct {
	From string
	As   string
	Map  map[string]string
}

func (t *Lookup) Name() string { return "lookup" }

func (t *Lookup) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.From)
	if !ok {
		return f, nil
	}
	out := tbl.NewColumn(t.As, tbl.KindString)
	for i := 0; i < c.Len(); i++ {
		v, ok := c.String(i)
		if !ok {
			out.AppendNull()
			continue
		}
		if mapped, hit := t.Map[v]; hit {
			_ = out.Append(mapped)
		} else {
			out.AppendNull()
		}
	}
	return f, f.AddColumn(out)
}
