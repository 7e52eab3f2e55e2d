package table_test

import (
	"testing"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

func TestColumnNullsAndValues(t *testing.T) {
	c := tbl.NewColumn("x", tbl.KindFloat)
	if err := c.Append(1.5); err != nil {
		t.Fatal(err)
	}
	c.AppendNull()
	if err := c.Append(3); err != nil {
		t.Fatal(err)
	}
	if c.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", c.Len())
	}
	if v, ok := c.Float(0); !ok || v != 1.5 {
		t.Fatalf("row 0: got %v %v", v, ok)
	}
	if !c.IsNull(1) {
		t.Fatal("row 1 should be null")
	}
	if v, ok := c.Float(2); !ok || v != 3 {
		t.Fatalf("int coercion failed: got %v %v", v, ok)
	}
}

func TestColumnKindMismatch(t *testing.T) {
	c := tbl.NewColumn("s", tbl.KindString)
	if err := c.Append(1.0); err == nil {
		t.Fatal("expected error appending float to string column")
	}
}

func TestTableLengthMismatch(t *testing.T) {
	a := tbl.NewColumn("a", tbl.KindString)
	_ = a.Append("x")
	b := tbl.NewColumn("b", tbl.KindFloat)
	if _, err := tbl.New(a, b); err == nil {
		t.Fatal("expected error for mismatched column lengths")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	c := tbl.NewColumn("s", tbl.KindString)
	_ = c.Append("CA")
	orig, err := tbl.New(c)
	if err != nil {
		t.Fatal(err)
	}
	cp := orig.Clone()
	cc, _ := cp.Column("s")
	cc.SetString(0, "TX")

	v, _ := c.String(0)
	if v != "CA" {
		t.Fatalf("clone aliased original data, got %q", v)
	}
}

func TestSelectCopiesAndErrors(t *testing.T) {
	a := tbl.NewColumn("a", tbl.KindString)
	_ = a.Append("x")
	b := tbl.NewColumn("b", tbl.KindFloat)
	_ = b.Append(1.0)
	orig, _ := tbl.New(a, b)

	sub, err := orig.Select("b")
	if err != nil {
		t.Fatal(err)
	}
	if sub.Cols() != 1 || sub.Rows() != 1 {
		t.Fatalf("unexpected shape %dx%d", sub.Rows(), sub.Cols())
	}
	sc, _ := sub.Column("b")
	sc.SetFloat(0, 9)
	if v, _ := b.Float(0); v != 1.0 {
		t.Fatal("select aliased original column")
	}

	if _, err := orig.Select("nope"); err == nil {
		t.Fatal("expected error selecting unknown column")
	}
}

func TestReplaceColumnKeepsPosition(t *testing.T) {
	a := tbl.NewColumn("a", tbl.KindString)
	_ = a.Append("1")
	b := tbl.NewColumn("b", tbl.KindString)
	_ = b.Append("x")
	f, _ := tbl.New(a, b)

	repl := tbl.NewColumn("a", tbl.KindFloat)
	_ = repl.Append(1.0)
	if err := f.ReplaceColumn("a", repl); err != nil {
		t.Fatal(err)
	}
	if f.ColumnAt(0).Kind() != tbl.KindFloat {
		t.Fatal("replacement did not keep position 0")
	}
	names := f.ColumnNames()
	if names[0] != "a" || names[1] != "b" {
		t.Fatalf("unexpected names %v", names)
	}
}
