package sched

import "github.com/sirupsen/logrus"

// PathTelemetryProvider is the narrow interface through which the engine
// reads transport state. Snapshots are re-fetched on every scheduling
// opportunity; the engine never caches them across calls.
type PathTelemetryProvider interface {
	ActivePaths() []PathSnapshot
	SendContext() SendContext
}

// Decision captures one scheduling decision for downstream observers
// (trace recording, logging). The engine only makes these values
// observable; formatting is the consumer's concern.
type Decision struct {
	Paths   []PathSnapshot
	Hint    float64
	Weights WeightVector
}

// DecisionObserver is notified after every successful scheduling decision.
type DecisionObserver func(d Decision)

// Engine composes path telemetry, the application priority hint, and one
// Policy into a single SelectWeights call. One engine instance
// belongs to exactly one connection and is driven synchronously from its
// event sequence: feedback for a send is always processed before the next
// SelectWeights call, so no locking is involved.
type Engine struct {
	provider PathTelemetryProvider
	policy   Policy
	name     string
	hint     PriorityHint
	observer DecisionObserver
}

// NewEngine builds an engine for one connection. The provider must be
// non-nil; a missing telemetry source is a programming error, not a
// recoverable condition. cfg must have been validated.
func NewEngine(provider PathTelemetryProvider, cfg Config) *Engine {
	if provider == nil {
		panic("sched.NewEngine: nil telemetry provider")
	}
	name := cfg.Policy
	if name == "" {
		name = PolicyMinRTT
	}
	return &Engine{
		provider: provider,
		policy:   NewPolicy(cfg.Policy, cfg),
		name:     name,
	}
}

// PolicyName returns the active policy's registry name.
func (e *Engine) PolicyName() string { return e.name }

// SetDecisionObserver installs the per-decision observability hook.
// Pass nil to disable.
func (e *Engine) SetDecisionObserver(obs DecisionObserver) { e.observer = obs }

// SetPriorityHint records the application's urgency for the next data
// granule, clamped to [0,1] (NaN resolves to 0.5).
func (e *Engine) SetPriorityHint(v float64) { e.hint.Set(v) }

// GetPriorityHint returns the current hint, defaulting to 0.5.
func (e *Engine) GetPriorityHint() float64 { return e.hint.Get() }

// SelectWeights fetches fresh path snapshots and produces a weight vector,
// one entry per active path. A nil result means no decision could be made
// this turn (no active paths yet); the caller retries once paths are ready.
// A single path short-circuits to weight 1.0 without touching policy state.
func (e *Engine) SelectWeights() WeightVector {
	paths := e.provider.ActivePaths()
	if len(paths) == 0 {
		logrus.Debug("scheduler: no active paths, deferring decision")
		return nil
	}

	var weights WeightVector
	if len(paths) == 1 {
		weights = oneHot(1, 0)
	} else {
		weights = e.policy.SelectWeights(paths, e.provider.SendContext(), e.hint.Get())
	}

	if e.observer != nil {
		e.observer(Decision{Paths: paths, Hint: e.hint.Get(), Weights: weights})
	}
	return weights
}

// ReportOutcome implements FeedbackSink. Outcomes reach the policy before
// the next SelectWeights call for this connection, with fresh snapshots for
// feature construction.
func (e *Engine) ReportOutcome(o Outcome) {
	if obs, ok := e.policy.(outcomeObserver); ok {
		obs.observeOutcome(o, e.provider.ActivePaths())
	}
}
