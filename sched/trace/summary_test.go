package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalDecisions)
	assert.Zero(t, s.TotalOutcomes)
	assert.Zero(t, s.MeanHint)
	assert.Empty(t, s.ChosenCounts)
	assert.Empty(t, s.BytesPerPath)
}

func TestSummarize_Aggregates(t *testing.T) {
	st := New(LevelDecisions)
	st.RecordDecision(DecisionRecord{Tick: 0, Hint: 0.2, Chosen: 0, Weights: []float64{0.8, 0.2}})
	st.RecordDecision(DecisionRecord{Tick: 100, Hint: 0.6, Chosen: 1, Weights: []float64{0.4, 0.6}})
	st.RecordDecision(DecisionRecord{Tick: 200, Hint: 1.0, Chosen: 1, Weights: []float64{0.0, 1.0}})
	st.RecordOutcome(OutcomeRecord{Tick: 300, Path: 0, Bytes: 1460})
	st.RecordOutcome(OutcomeRecord{Tick: 400, Path: 1, Bytes: 2920})
	st.RecordOutcome(OutcomeRecord{Tick: 500, Path: 1, Bytes: 1000})

	s := Summarize(st)

	assert.Equal(t, 3, s.TotalDecisions)
	assert.Equal(t, 3, s.TotalOutcomes)
	assert.InDelta(t, 0.6, s.MeanHint, 1e-12)
	assert.Equal(t, map[int]int{0: 1, 1: 2}, s.ChosenCounts)
	assert.InDelta(t, 0.4, s.WeightShare[0], 1e-12)
	assert.InDelta(t, 0.6, s.WeightShare[1], 1e-12)
	assert.Equal(t, int64(1460), s.BytesPerPath[0])
	assert.Equal(t, int64(3920), s.BytesPerPath[1])
}
