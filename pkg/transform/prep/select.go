package prep

import (
	"context"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// Select projects the table down to the named columns. The input table
// is left untouched; the projection is a deep copy.
type Select struct{ Columns []string }

func (t *Select) Name() string { return "select" }

func (t *Select) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	return f.Select(t.Columns...)
}
