package prep

import (
	"context"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// KeepInSet filters rows to those whose value in Column is a member of
// Values. Rows with a null in Column are dropped too.
type KeepInSet struct {
	Column string
	Values map[string]struct{}
}

func NewKeepInSet(col string, vals []string) *KeepInSet {
	m := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		m[v] = struct{}{}
	}
	return &KeepInSet{Column: col, Values: m}
}

func (t *KeepInSet) Name() string { return "keep_in_set" }

func (t *KeepInSet) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.Column)
	if !ok {
		return f, nil
	}
	return filterRows(f, func(i int) bool {
		v, ok := c.String(i)
		if !ok {
			return false
		}
		_, member := t.Values[v]
		return member
	})
}

// filterRows builds a new table from the rows keep selects.
func filterRows(f *tbl.Table, keep func(i int) bool) (*tbl.Table, error) {
	names := f.ColumnNames()
	cols := make([]*tbl.Column, len(names))
	for i, n := range names {
		src, _ := f.Column(n)
		cols[i] = tbl.NewColumn(n, src.Kind())
	}
	for r := 0; r < f.Rows(); r++ {
		if !keep(r) {
			continue
		}
		for i := range names {
			src := f.ColumnAt(i)
			v, ok := src.Value(r)
			if !ok {
				cols[i].AppendNull()
				continue
			}
			if err := cols[i].Append(v); err != nil {
				return nil, err
			}
		}
	}
	return tbl.New(cols...)
}
