package sched

import (
	"fmt"
	"math"
)

// WeightVector holds one non-negative weight per active path. For the
// multi-candidate policies the weights sum to 1.0; single-winner policies
// produce a one-hot vector. A nil WeightVector means "no decision" (see
// Engine.SelectWeights). Vectors are produced fresh on every call and never
// persisted.
type WeightVector []float64

// Sum returns the total weight.
func (w WeightVector) Sum() float64 {
	total := 0.0
	for _, v := range w {
		total += v
	}
	return total
}

// Best returns the index carrying the largest weight. Ties broken by
// lowest index.
func (w WeightVector) Best() int {
	best := 0
	for i := 1; i < len(w); i++ {
		if w[i] > w[best] {
			best = i
		}
	}
	return best
}

// oneHot builds a vector of n weights with weight 1.0 at idx.
func oneHot(n, idx int) WeightVector {
	w := make(WeightVector, n)
	w[idx] = 1.0
	return w
}

// Policy computes a weight distribution over the given paths.
// Implementations own exactly the state they need (round-robin cursor,
// BLEST penalty accumulator, ECF hysteresis flag, bandit models) and must
// be deterministic given identical inputs and internal state.
//
// Callers guarantee len(paths) >= 1; the empty-path case is handled by the
// Engine before dispatch. An empty slice is a programmer error and panics.
type Policy interface {
	SelectWeights(paths []PathSnapshot, sctx SendContext, hint float64) WeightVector
}

// Policy names accepted by NewPolicy.
const (
	PolicyRoundRobin   = "round-robin"
	PolicyMinRTT       = "min-rtt"
	PolicyBLEST        = "blest"
	PolicyECF          = "ecf"
	PolicyPeekaboo     = "peekaboo"
	PolicyPriorityLoad = "priority-load"
)

// validPolicyNames maps policy names to validity. Unexported to prevent mutation.
var validPolicyNames = map[string]bool{
	PolicyRoundRobin:   true,
	PolicyMinRTT:       true,
	PolicyBLEST:        true,
	PolicyECF:          true,
	PolicyPeekaboo:     true,
	PolicyPriorityLoad: true,
}

// IsValidPolicy returns true if name is a recognized scheduling policy.
func IsValidPolicy(name string) bool { return name == "" || validPolicyNames[name] }

// NewPolicy creates a scheduling policy by name. Empty string defaults to
// min-rtt. Tunables come from cfg, validated once at startup by
// cfg.Validate(). Panics on unrecognized names.
func NewPolicy(name string, cfg Config) Policy {
	switch name {
	case "", PolicyMinRTT:
		return &MinRTT{}
	case PolicyRoundRobin:
		return &RoundRobin{}
	case PolicyBLEST:
		return &BLEST{lambda: cfg.BlestLambda, varianceBudget: cfg.BlestVar}
	case PolicyECF:
		return &ECF{}
	case PolicyPeekaboo:
		return NewPeekaboo(cfg.Exploration)
	case PolicyPriorityLoad:
		return &PriorityLoad{}
	default:
		panic(fmt.Sprintf("unknown scheduling policy %q", name))
	}
}

// RoundRobin cycles through paths in index order, ignoring telemetry.
// Over any window of len(paths) consecutive calls each path is selected
// exactly once.
type RoundRobin struct {
	lastUsed int
}

// SelectWeights implements Policy for RoundRobin.
func (rr *RoundRobin) SelectWeights(paths []PathSnapshot, _ SendContext, _ float64) WeightVector {
	if len(paths) == 0 {
		panic("RoundRobin.SelectWeights: empty paths")
	}
	if len(paths) == 1 {
		rr.lastUsed = 0
		return oneHot(1, 0)
	}
	rr.lastUsed = (rr.lastUsed + 1) % len(paths)
	return oneHot(len(paths), rr.lastUsed)
}

// MinRTT puts all weight on the lower-RTT path while it has available
// window, falling back to the slower path to keep sending. Two-path
// specialization: with more than two paths only the first two are
// considered, the rest receive weight zero.
type MinRTT struct{}

// SelectWeights implements Policy for MinRTT.
func (m *MinRTT) SelectWeights(paths []PathSnapshot, _ SendContext, _ float64) WeightVector {
	if len(paths) == 0 {
		panic("MinRTT.SelectWeights: empty paths")
	}
	if len(paths) == 1 {
		return oneHot(1, 0)
	}
	// No sample on path 1 yet: force it to bootstrap measurement.
	if paths[1].SmoothedRTT == 0 {
		return oneHot(len(paths), 1)
	}
	fast, slow := orderByRTT(paths)
	if paths[fast].AvailableWindow() > 0 {
		return oneHot(len(paths), fast)
	}
	return oneHot(len(paths), slow)
}

// clamp01 clamps v to [0,1]; NaN resolves to the neutral priority.
func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return defaultPriority
	}
	return math.Min(1.0, math.Max(0.0, v))
}
