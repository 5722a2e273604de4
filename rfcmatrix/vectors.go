package rfcmatrix

import "gonum.org/v1/gonum/floats"

// VectorSummary reduces a range-pair or level-crossing histogram vector
// (rfc.Context.RangePair()/LevelCrossing()) to the handful of summary
// statistics fatigue reports usually quote: total count, peak class, and
// the cumulative distribution across classes. The reductions use
// gonum/floats rather than hand-rolled loops.
type VectorSummary struct {
	Total        float64
	PeakClass    int
	PeakCount    float64
	CumulativeAt []float64 // CumulativeAt[i] = sum(v[:i+1])
}

// Summarize computes a VectorSummary over v. Returns a zero-value summary
// for an empty vector (Total 0, PeakClass -1).
func Summarize(v []float64) VectorSummary {
	if len(v) == 0 {
		return VectorSummary{PeakClass: -1}
	}

	cum := make([]float64, len(v))
	copy(cum, v)
	floats.CumSum(cum, cum)

	peak := floats.MaxIdx(v)

	return VectorSummary{
		Total:        floats.Sum(v),
		PeakClass:    peak,
		PeakCount:    v[peak],
		CumulativeAt: cum,
	}
}
