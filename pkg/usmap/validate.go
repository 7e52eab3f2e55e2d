package usmap

import (
	"fmt"
	"strings"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

// maxReportedCodes bounds how many distinct unknown codes a warning lists.
const maxReportedCodes = 10

// UnknownCodesWarning reports state values that are not in the reference
// table. It is observational; the offending rows are dropped later during
// normalization.
type UnknownCodesWarning struct {
	Codes    []string // first distinct unknowns, capped at maxReportedCodes
	Distinct int      // total distinct unknowns seen
}

func (w *UnknownCodesWarning) String() string {
	return fmt.Sprintf("invalid state codes found: %s (%d unique); these rows will be ignored",
		strings.Join(w.Codes, ", "), w.Distinct)
}

// Validate checks structural preconditions before normalization. It
// returns a non-nil warning when unrecognized state codes are present;
// warnings never block the pipeline.
func Validate(t *tbl.Table, stateCol, valueCol string) (*UnknownCodesWarning, error) {
	if t.Rows() == 0 {
		return nil, ErrEmptyData
	}
	sc, ok := t.Column(stateCol)
	if !ok {
		return nil, fmt.Errorf("%w: state column %q", ErrMissingColumn, stateCol)
	}
	if _, ok := t.Column(valueCol); !ok {
		return nil, fmt.Errorf("%w: value column %q", ErrMissingColumn, valueCol)
	}

	seen := make(map[string]struct{})
	var w UnknownCodesWarning
	for r := 0; r < sc.Len(); r++ {
		v, ok := sc.Value(r)
		if !ok {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(cellText(v)))
		if code == "" || ValidState(code) {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		w.Distinct++
		if len(w.Codes) < maxReportedCodes {
			w.Codes = append(w.Codes, code)
		}
	}
	if w.Distinct == 0 {
		return nil, nil
	}
	return &w, nil
}
