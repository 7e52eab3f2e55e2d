// Package golearn bridges usmap Tables and golearn DenseInstances so
// normalized state data can feed golearn models.
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// ToDenseInstances converts a Table into golearn DenseInstances. Numeric
// columns become float attributes, everything else categorical; the last
// attribute is registered as the class.
func ToDenseInstances(t *tbl.Table) (*base.DenseInstances, error) {
	attrs := make([]base.Attribute, t.Cols())
	for i := 0; i < t.Cols(); i++ {
		col := t.ColumnAt(i)
		if col.IsNumeric() {
			attrs[i] = base.NewFloatAttribute(col.Name())
			continue
		}
		ca := new(base.CategoricalAttribute)
		ca.SetName(col.Name())
		attrs[i] = ca
	}

	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(t.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < t.Rows(); r++ {
		for c := 0; c < t.Cols(); c++ {
			col := t.ColumnAt(c)
			if col.IsNumeric() {
				if v, ok := col.Float(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
				continue
			}
			if v, ok := col.String(r); ok {
				inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
			}
		}
	}

	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances back into a Table.
func FromDenseInstances(inst *base.DenseInstances) (*tbl.Table, error) {
	attrs := inst.AllAttributes()
	cols := make([]*tbl.Column, len(attrs))
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		kind := tbl.KindString
		if a.GetType() == 1 { // float in golearn
			kind = tbl.KindFloat
		}
		cols[i] = tbl.NewColumn(a.GetName(), kind)
		spec, err := inst.GetAttribute(a)
		if err != nil {
			return nil, err
		}
		specs[i] = spec
	}

	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		for c := range cols {
			if cols[c].Kind() == tbl.KindFloat {
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				if err := cols[c].Append(v); err != nil {
					return nil, err
				}
				continue
			}
			v := base.Attribute.GetStringFromSysVal(specs[c].GetAttribute(), inst.Get(specs[c], r))
			if err := cols[c].Append(v); err != nil {
				return nil, err
			}
		}
	}
	return tbl.New(cols...)
}
