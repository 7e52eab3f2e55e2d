package usmap

import (
	"context"

	tbl "github.com/wdm0006/usmap/pkg/table"
	"github.com/wdm0006/usmap/pkg/transform/prep"
)

// Canonical column names used for normalized output and export.
const (
	ColState = "state_code"
	ColValue = "value"
	ColName  = "state_name"
)

// Record is one normalized state entry: a valid code, the aggregated
// value, and the full state name.
type Record struct {
	Code  string
	Value float64
	Name  string
}

// Normalize runs the cleaning pipeline over t and returns one Record per
// distinct valid state code, sorted by code:
//
//	project -> stringify/trim/upper state -> keep valid codes ->
//	coerce value numeric -> attach name -> group by code, mean value
//
// Rows carrying unknown codes are dropped silently (Validate has already
// warned about them). Rows whose value fails numeric coercion contribute
// nothing to their group's mean; a state with no numeric value at all
// produces no Record. The input table is not modified.
func Normalize(ctx context.Context, t *tbl.Table, stateCol, valueCol string) ([]Record, error) {
	// The attached name column must not collide with an input column
	// that happens to be called state_name already.
	nameCol := ColName
	for stateCol == nameCol || valueCol == nameCol {
		nameCol = "_" + nameCol
	}

	p := tbl.NewPipeline().
		Add(&prep.Select{Columns: []string{stateCol, valueCol}}).
		Add(&prep.ToString{Column: stateCol}).
		Add(&prep.Trim{Column: stateCol}).
		Add(&prep.Upper{Column: stateCol}).
		Add(prep.NewKeepInSet(stateCol, StateCodes())).
		Add(&prep.ToNumeric{Column: valueCol}).
		Add(&prep.Lookup{From: stateCol, As: nameCol, Map: States}).
		Add(&prep.GroupMean{Key: stateCol, Value: valueCol, Carry: []string{nameCol}})

	out, err := p.Run(ctx, t)
	if err != nil {
		return nil, err
	}

	codeCol, _ := out.Column(stateCol)
	valCol, _ := out.Column(valueCol)
	names, _ := out.Column(nameCol)
	records := make([]Record, 0, out.Rows())
	for r := 0; r < out.Rows(); r++ {
		code, _ := codeCol.String(r)
		val, _ := valCol.Float(r)
		name, _ := names.String(r)
		records = append(records, Record{Code: code, Value: val, Name: name})
	}
	return records, nil
}

// recordsTable lays normalized records out as the canonical three-column
// table used by Export.
func recordsTable(records []Record) *tbl.Table {
	code := tbl.NewColumn(ColState, tbl.KindString)
	val := tbl.NewColumn(ColValue, tbl.KindFloat)
	name := tbl.NewColumn(ColName, tbl.KindString)
	for _, rec := range records {
		_ = code.Append(rec.Code)
		_ = val.Append(rec.Value)
		_ = name.Append(rec.Name)
	}
	t, _ := tbl.New(code, val, name)
	return t
}
