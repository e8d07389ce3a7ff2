package sched

import "math"

// Peekaboo is a contextual-bandit policy: per path it maintains an online
// ridge regression (A, b) over a shared 6-dimensional feature vector built
// from both paths' congestion-window and bytes-in-flight-over-RTT terms.
// When the fast path has no available window, each candidate gets a
// linear-UCB score: a point prediction x·(A⁻¹b) plus an uncertainty bonus
// that shrinks as observations accumulate. The path with the lower estimated
// pending wait cost is chosen and its model updated with the most recent
// accumulated reward.
//
// The model indexing assumes exactly two paths (the feature vector is split
// into per-path halves); with more paths only the first two are considered.
type Peekaboo struct {
	exploration float64

	models [2]banditModel
	x      Vec6       // shared feature vector, rebuilt from outcomes
	reward float64    // accumulated decayed reward R
	decay  float64    // decay factor g, shrunk as rewards go stale
	rttMs  [2]float64 // last observed per-path RTT, for feature construction
}

type banditModel struct {
	A Mat6
	B Vec6
}

// defaultExploration is the UCB exploration coefficient from the reference
// Peekaboo tuning.
const defaultExploration = 0.8

// NewPeekaboo creates a Peekaboo policy with the given exploration
// coefficient; non-positive values fall back to the default 0.8.
func NewPeekaboo(exploration float64) *Peekaboo {
	if exploration <= 0 {
		exploration = defaultExploration
	}
	return &Peekaboo{
		exploration: exploration,
		models:      [2]banditModel{{A: Identity6()}, {A: Identity6()}},
		decay:       1.0,
	}
}

// Score returns the linear-UCB estimate for path i under the current
// feature vector. Exposed for observability and tests.
func (p *Peekaboo) Score(i int) float64 {
	inv := p.models[i].A.Inverse()
	return p.x.Dot(inv.MulVec(p.models[i].B)) + p.exploration*math.Sqrt(inv.Quadratic(p.x))
}

// SelectWeights implements Policy for Peekaboo.
func (p *Peekaboo) SelectWeights(paths []PathSnapshot, _ SendContext, _ float64) WeightVector {
	if len(paths) == 0 {
		panic("Peekaboo.SelectWeights: empty paths")
	}
	if len(paths) == 1 {
		return oneHot(1, 0)
	}
	if paths[1].SmoothedRTT == 0 {
		return oneHot(len(paths), 1)
	}

	fast, slow := orderByRTT(paths)
	if paths[fast].AvailableWindow() > 0 {
		// Free window on the fast path; use it and skip the model update.
		return oneHot(len(paths), fast)
	}

	chosen := fast
	if p.Score(slow) < p.Score(fast) {
		chosen = slow
	}

	p.models[chosen].A.AddOuter(p.x)
	p.models[chosen].B.AddScaled(p.reward, p.x)

	return oneHot(len(paths), chosen)
}

// observeOutcome rebuilds the reporting path's feature-vector half from its
// current congestion state and accumulates the throughput reward, decayed
// by how stale the action is relative to the reference RTT window
// T_r = max(2·rttFast, rttSlow). Rewards older than three reference windows
// are dropped entirely.
func (p *Peekaboo) observeOutcome(o Outcome, paths []PathSnapshot) {
	if len(paths) < 2 || int(o.Path) > 1 {
		return
	}
	snap := paths[o.Path]

	p.rttMs[o.Path] = float64(snap.SmoothedRTT.Milliseconds())
	for i := range p.rttMs {
		if p.rttMs[i] == 0 {
			p.rttMs[i] = 10 // no sample yet; seed with a nominal 10ms
		}
	}

	rtt := p.rttMs[o.Path]
	base := int(o.Path) * 3
	p.x[base] = float64(snap.CWnd) / rtt
	p.x[base+1] = float64(snap.BytesInFlight) / rtt
	p.x[base+2] = float64(snap.CWnd) / rtt

	rttF := math.Min(p.rttMs[0], p.rttMs[1])
	rttS := math.Max(p.rttMs[0], p.rttMs[1])
	refWindow := math.Max(2*rttF, rttS)

	elapsedMs := float64(o.CompletedAt-o.SentAt) / 1000.0
	if elapsedMs <= 0 || elapsedMs >= 3*refWindow {
		return
	}

	r := float64(snap.SegmentSize) / (elapsedMs / 1000.0)
	p.reward += r * p.decay
	switch {
	case elapsedMs <= refWindow:
		p.decay *= 0.9
	case elapsedMs <= 2*refWindow:
		p.decay *= 0.7
	default:
		p.decay *= 0.5
	}
}
