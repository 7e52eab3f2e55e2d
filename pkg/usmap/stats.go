package usmap

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistics is a read-only snapshot over the normalized values.
// MissingStates counts reference-table members absent from the data.
type Statistics struct {
	Count         int
	Mean          float64
	Median        float64
	Std           float64 // sample standard deviation
	Min           float64
	Max           float64
	MissingStates int
	TotalStates   int
}

func computeStatistics(records []Record) Statistics {
	s := Statistics{
		Count:         len(records),
		TotalStates:   len(States),
		MissingStates: len(States) - len(records),
	}
	if len(records) == 0 {
		s.Mean, s.Median, s.Std, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return s
	}
	vals := make([]float64, len(records))
	for i, r := range records {
		vals[i] = r.Value
	}
	s.Mean = stat.Mean(vals, nil)
	s.Std = stat.StdDev(vals, nil)

	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		s.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		s.Median = sorted[mid]
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	return s
}
