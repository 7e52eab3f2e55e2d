package prep

import (
	"context"
	"math"
	"strconv"
	"strings"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// ToNumeric coerces a column to float. String cells that fail to parse
// become null rather than erroring; int columns widen to float. Literal
// "NaN" and infinity spellings parse but are not usable values, so they
// become null too instead of leaking into downstream aggregation.
type ToNumeric struct{ Column string }

func (t *ToNumeric) Name() string { return "to_numeric" }

func (t *ToNumeric) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.Column)
	if !ok || c.Kind() == tbl.KindFloat {
		return f, nil
	}
	out := tbl.NewColumn(c.Name(), tbl.KindFloat)
	for i := 0; i < c.Len(); i++ {
		switch c.Kind() {
		case tbl.KindInt:
			if v, ok := c.Int(i); ok {
				_ = out.Append(float64(v))
			} else {
				out.AppendNull()
			}
		case tbl.KindString:
			v, ok := c.String(i)
			if !ok {
				out.AppendNull()
				continue
			}
			x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
			if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
				out.AppendNull()
				continue
			}
			_ = out.Append(x)
		default:
			out.AppendNull()
		}
	}
	return f, f.ReplaceColumn(t.Column, out)
}
