package prep

import (
	"context"
	"fmt"
	"sort"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// GroupMean groups rows by the Key column and reduces the Value column
// to the arithmetic mean of its non-null cells. For each Carry column
// the first non-null value in input order is kept. Groups with no
// numeric value at all are dropped. Output rows are sorted by key.
type GroupMean struct {
	Key   string
	Value string
	Carry []string
}

func (t *GroupMean) Name() string { return "group_mean" }

func (t *GroupMean) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	keyCol, ok := f.Column(t.Key)
	if !ok {
		return nil, fmt.Errorf("group_mean: unknown key column %s", t.Key)
	}
	valCol, ok := f.Column(t.Value)
	if !ok {
		return nil, fmt.Errorf("group_mean: unknown value column %s", t.Value)
	}

	type group struct {
		sum   float64
		n     int
		carry map[string]string
	}
	groups := make(map[string]*group)
	for r := 0; r < f.Rows(); r++ {
		k, ok := keyCol.String(r)
		if !ok {
			continue
		}
		g := groups[k]
		if g == nil {
			g = &group{carry: make(map[string]string, len(t.Carry))}
			groups[k] = g
		}
		if v, ok := valCol.Float(r); ok {
			g.sum += v
			g.n++
		}
		for _, cn := range t.Carry {
			if _, seen := g.carry[cn]; seen {
				continue
			}
			if cc, ok := f.Column(cn); ok {
				if cv, ok := cc.String(r); ok {
					g.carry[cn] = cv
				}
			}
		}
	}

	keys := make([]string, 0, len(groups))
	for k, g := range groups {
		if g.n == 0 {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	outKey := tbl.NewColumn(t.Key, tbl.KindString)
	outVal := tbl.NewColumn(t.Value, tbl.KindFloat)
	outCarry := make([]*tbl.Column, len(t.Carry))
	for i, cn := range t.Carry {
		outCarry[i] = tbl.NewColumn(cn, tbl.KindString)
	}
	for _, k := range keys {
		g := groups[k]
		_ = outKey.Append(k)
		_ = outVal.Append(g.sum / float64(g.n))
		for i, cn := range t.Carry {
			if cv, ok := g.carry[cn]; ok {
				_ = outCarry[i].Append(cv)
			} else {
				outCarry[i].AppendNull()
			}
		}
	}
	cols := append([]*tbl.Column{outKey, outVal}, outCarry...)
	return tbl.New(cols...)
}
