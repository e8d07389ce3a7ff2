package trace

// Level controls the verbosity of decision tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelDecisions captures every scheduling decision and send outcome.
	LevelDecisions Level = "decisions"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:      true,
	LevelDecisions: true,
	"":             true, // empty defaults to none
}

// IsValidLevel returns true if the given level string is recognized.
func IsValidLevel(level string) bool {
	return validLevels[Level(level)]
}

// ScheduleTrace collects decision and outcome records during a run.
type ScheduleTrace struct {
	Level     Level
	Decisions []DecisionRecord
	Outcomes  []OutcomeRecord
	Samples   []SampleRecord
}

// New creates a ScheduleTrace ready for recording.
func New(level Level) *ScheduleTrace {
	return &ScheduleTrace{
		Level:     level,
		Decisions: make([]DecisionRecord, 0),
		Outcomes:  make([]OutcomeRecord, 0),
		Samples:   make([]SampleRecord, 0),
	}
}

// Enabled reports whether records are being kept.
func (st *ScheduleTrace) Enabled() bool {
	return st != nil && st.Level == LevelDecisions
}

// RecordDecision appends a scheduling decision record.
func (st *ScheduleTrace) RecordDecision(record DecisionRecord) {
	if !st.Enabled() {
		return
	}
	st.Decisions = append(st.Decisions, record)
}

// RecordOutcome appends a send outcome record.
func (st *ScheduleTrace) RecordOutcome(record OutcomeRecord) {
	if !st.Enabled() {
		return
	}
	st.Outcomes = append(st.Outcomes, record)
}

// RecordSample appends a periodic path telemetry sample.
func (st *ScheduleTrace) RecordSample(record SampleRecord) {
	if !st.Enabled() {
		return
	}
	st.Samples = append(st.Samples, record)
}
