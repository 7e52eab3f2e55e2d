package usmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tbl "github.com/wdm0006/usmap/pkg/table"
)

func twoColTable(t *testing.T, stateName string, states []string, valueName string, values []float64) *tbl.Table {
	t.Helper()
	sc := tbl.NewColumn(stateName, tbl.KindString)
	for _, s := range states {
		require.NoError(t, sc.Append(s))
	}
	vc := tbl.NewColumn(valueName, tbl.KindFloat)
	for _, v := range values {
		require.NoError(t, vc.Append(v))
	}
	out, err := tbl.New(sc, vc)
	require.NoError(t, err)
	return out
}

func TestDetectColumns(t *testing.T) {
	f := twoColTable(t, "state_code", []string{"CA", "TX"}, "revenue", []float64{1, 2})

	assert.Equal(t, "state_code", DetectStateColumn(f))
	vc, err := DetectValueColumn(f, "state_code")
	require.NoError(t, err)
	assert.Equal(t, "revenue", vc)
}

func TestDetectStateColumnCaseInsensitive(t *testing.T) {
	f := twoColTable(t, "st", []string{" ca ", "tx"}, "v", []float64{1, 2})
	assert.Equal(t, "st", DetectStateColumn(f))
}

func TestDetectStateColumnSkipsValueColumn(t *testing.T) {
	// Numeric first column; detector should pass over it and find codes.
	vc := tbl.NewColumn("total", tbl.KindFloat)
	require.NoError(t, vc.Append(1.0))
	sc := tbl.NewColumn("abbr", tbl.KindString)
	require.NoError(t, sc.Append("NY"))
	f, err := tbl.New(vc, sc)
	require.NoError(t, err)

	assert.Equal(t, "abbr", DetectStateColumn(f))
}

func TestDetectStateColumnFallsBackToFirst(t *testing.T) {
	f := twoColTable(t, "city", []string{"Portland", "Austin"}, "v", []float64{1, 2})
	assert.Equal(t, "city", DetectStateColumn(f))
}

func TestDetectValueColumnFallback(t *testing.T) {
	// No numeric column: first non-state column wins.
	a := tbl.NewColumn("state", tbl.KindString)
	require.NoError(t, a.Append("CA"))
	b := tbl.NewColumn("notes", tbl.KindString)
	require.NoError(t, b.Append("high"))
	f, err := tbl.New(a, b)
	require.NoError(t, err)

	vc, err := DetectValueColumn(f, "state")
	require.NoError(t, err)
	assert.Equal(t, "notes", vc)
}

func TestDetectValueColumnNoCandidate(t *testing.T) {
	a := tbl.NewColumn("state", tbl.KindString)
	require.NoError(t, a.Append("CA"))
	f, err := tbl.New(a)
	require.NoError(t, err)

	_, err = DetectValueColumn(f, "state")
	assert.ErrorIs(t, err, ErrNoValueColumn)
}
