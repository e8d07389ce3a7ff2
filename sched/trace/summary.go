package trace

// Summary aggregates statistics from a ScheduleTrace.
type Summary struct {
	TotalDecisions int
	TotalOutcomes  int
	MeanHint       float64
	ChosenCounts   map[int]int     // path index → times it carried the top weight
	WeightShare    map[int]float64 // path index → mean weight across decisions
	BytesPerPath   map[int]int64   // path index → bytes completed
}

// Summarize computes aggregate statistics from a ScheduleTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *ScheduleTrace) *Summary {
	summary := &Summary{
		ChosenCounts: make(map[int]int),
		WeightShare:  make(map[int]float64),
		BytesPerPath: make(map[int]int64),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Decisions)
	summary.TotalOutcomes = len(st.Outcomes)

	if len(st.Decisions) > 0 {
		hintSum := 0.0
		for _, d := range st.Decisions {
			hintSum += d.Hint
			summary.ChosenCounts[d.Chosen]++
			for i, w := range d.Weights {
				summary.WeightShare[i] += w
			}
		}
		summary.MeanHint = hintSum / float64(len(st.Decisions))
		for i := range summary.WeightShare {
			summary.WeightShare[i] /= float64(len(st.Decisions))
		}
	}

	for _, o := range st.Outcomes {
		summary.BytesPerPath[o.Path] += o.Bytes
	}

	return summary
}
