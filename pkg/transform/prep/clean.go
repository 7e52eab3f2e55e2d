package prep

import (
	"context"
	"strings"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// Trim strips surrounding whitespace from a string column.
type Trim struct{ Column string }

func (t *Trim) Name() string { return "trim" }

func (t *Trim) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.Column)
	if !ok || c.Kind() != tbl.KindString {
		return f, nil
	}
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.String(i); ok {
			c.SetString(i, strings.TrimSpace(v))
		}
	}
	return f, nil
}

// Upper uppercases a string column.
type Upper struct{ Column string }

func (t *Upper) Name() string { return "upper" }

func (t *Upper) Apply(ctx context.Context, f *tbl.Table) (*tbl.Table, error) {
	c, ok := f.Column(t.Column)
	if !ok || c.Kind() != tbl.KindString {
		return f, nil
	}
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.String(i); ok {
			c.SetString(i, strings.ToUpper(v))
		}
	}
	return f, nil
}
