package table

import "fmt"

// Kind enumerates the logical column types.
type Kind int

const (
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Column is a named, typed, nullable vector. Exactly one of the value
// slices is populated, matched to the column's kind; valid runs parallel
// to it and marks non-null cells.
type Column struct {
	name   string
	kind   Kind
	bools  []bool
	ints   []int64
	floats []float64
	strs   []string
	valid  []bool
}

func NewColumn(name string, kind Kind) *Column {
	return &Column{name: name, kind: kind}
}

func (c *Column) Name() string      { return c.name }
func (c *Column) Kind() Kind        { return c.kind }
func (c *Column) Len() int          { return len(c.valid) }
func (c *Column) IsNull(i int) bool { return !c.valid[i] }

// AppendNull appends a null cell.
func (c *Column) AppendNull() {
	switch c.kind {
	case KindBool:
		c.bools = append(c.bools, false)
	case KindInt:
		c.ints = append(c.ints, 0)
	case KindFloat:
		c.floats = append(c.floats, 0)
	default:
		c.strs = append(c.strs, "")
	}
	c.valid = append(c.valid, false)
}

// Append appends v, coercing compatible numeric types. A nil v appends null.
func (c *Column) Append(v any) error {
	if v == nil {
		c.AppendNull()
		return nil
	}
	switch c.kind {
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s expects bool, got %T", c.name, v)
		}
		c.bools = append(c.bools, b)
	case KindInt:
		switch t := v.(type) {
		case int:
			c.ints = append(c.ints, int64(t))
		case int64:
			c.ints = append(c.ints, t)
		case float64:
			c.ints = append(c.ints, int64(t))
		default:
			return fmt.Errorf("column %s expects int, got %T", c.name, v)
		}
	case KindFloat:
		switch t := v.(type) {
		case float64:
			c.floats = append(c.floats, t)
		case float32:
			c.floats = append(c.floats, float64(t))
		case int:
			c.floats = append(c.floats, float64(t))
		case int64:
			c.floats = append(c.floats, float64(t))
		default:
			return fmt.Errorf("column %s expects float, got %T", c.name, v)
		}
	case KindString:
		s, ok := v.(string)
		if !ok {
			return fmt.Errorf("column %s expects string, got %T", c.name, v)
		}
		c.strs = append(c.strs, s)
	default:
		return fmt.Errorf("column %s has invalid kind", c.name)
	}
	c.valid = append(c.valid, true)
	return nil
}

// Bool returns the cell value; ok is false for nulls.
func (c *Column) Bool(i int) (bool, bool) { return c.bools[i], c.valid[i] }

// Int returns the cell value; ok is false for nulls.
func (c *Column) Int(i int) (int64, bool) { return c.ints[i], c.valid[i] }

// Float returns the cell as float64, converting int cells. ok is false
// for nulls and for non-numeric kinds.
func (c *Column) Float(i int) (float64, bool) {
	if !c.valid[i] {
		return 0, false
	}
	switch c.kind {
	case KindFloat:
		return c.floats[i], true
	case KindInt:
		return float64(c.ints[i]), true
	default:
		return 0, false
	}
}

// String returns the cell value; ok is false for nulls and non-string kinds.
func (c *Column) String(i int) (string, bool) {
	if !c.valid[i] || c.kind != KindString {
		return "", false
	}
	return c.strs[i], true
}

// SetString overwrites a string cell in place.
func (c *Column) SetString(i int, v string) {
	c.strs[i] = v
	c.valid[i] = true
}

// SetFloat overwrites a float cell in place.
func (c *Column) SetFloat(i int, v float64) {
	c.floats[i] = v
	c.valid[i] = true
}

// SetNull marks a cell null.
func (c *Column) SetNull(i int) { c.valid[i] = false }

// Value returns the cell boxed as any; ok is false for nulls.
func (c *Column) Value(i int) (any, bool) {
	if !c.valid[i] {
		return nil, false
	}
	switch c.kind {
	case KindBool:
		return c.bools[i], true
	case KindInt:
		return c.ints[i], true
	case KindFloat:
		return c.floats[i], true
	default:
		return c.strs[i], true
	}
}

// IsNumeric reports whether every non-null cell carries a numeric value.
// String columns are never numeric here; coercion is a transform concern.
func (c *Column) IsNumeric() bool {
	return c.kind == KindFloat || c.kind == KindInt
}

func (c *Column) clone() *Column {
	out := &Column{name: c.name, kind: c.kind}
	out.bools = append([]bool(nil), c.bools...)
	out.ints = append([]int64(nil), c.ints...)
	out.floats = append([]float64(nil), c.floats...)
	out.strs = append([]string(nil), c.strs...)
	out.valid = append([]bool(nil), c.valid...)
	return out
}

// Table is a columnar container for tabular data. Columns share a row
// count; construction via Append keeps them aligned.
type Table struct {
	cols  []*Column
	index map[string]int
}

// New builds a Table over the given columns. Column lengths must agree.
func New(cols ...*Column) (*Table, error) {
	t := &Table{cols: cols, index: make(map[string]int, len(cols))}
	for i, c := range cols {
		if _, dup := t.index[c.Name()]; dup {
			return nil, fmt.Errorf("duplicate column %q", c.Name())
		}
		if c.Len() != cols[0].Len() {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), cols[0].Len())
		}
		t.index[c.Name()] = i
	}
	return t, nil
}

func (t *Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

func (t *Table) Cols() int { return len(t.cols) }

// ColumnNames returns names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name()
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// ColumnAt returns the i-th column.
func (t *Table) ColumnAt(i int) *Column { return t.cols[i] }

// Clone deep-copies the table so callers and the table never alias data.
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.clone()
	}
	out, _ := New(cols...)
	return out
}

// AddColumn appends a column; its length must match the table's row count.
func (t *Table) AddColumn(c *Column) error {
	if _, dup := t.index[c.Name()]; dup {
		return fmt.Errorf("duplicate column %q", c.Name())
	}
	if len(t.cols) > 0 && c.Len() != t.Rows() {
		return fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), t.Rows())
	}
	t.index[c.Name()] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// ReplaceColumn swaps the named column for c, keeping its position.
func (t *Table) ReplaceColumn(name string, c *Column) error {
	i, ok := t.index[name]
	if !ok {
		return fmt.Errorf("unknown column: %s", name)
	}
	if c.Len() != t.Rows() {
		return fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), t.Rows())
	}
	delete(t.index, name)
	t.index[c.Name()] = i
	t.cols[i] = c
	return nil
}

// Select returns a new table holding deep copies of the named columns.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]*Column, 0, len(names))
	for _, n := range names {
		c, ok := t.Column(n)
		if !ok {
			return nil, fmt.Errorf("unknown column: %s", n)
		}
		cols = append(cols, c.clone())
	}
	return New(cols...)
}
