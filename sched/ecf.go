package sched

import "math"

// ECF (Earliest Completion First) picks the path that minimizes the
// estimated completion time of the queued data. The waiting flag is
// hysteresis state that persists between calls: once ECF decides that
// waiting for the fast path beats sending on the slow one, it keeps
// waiting until the completion estimate flips back, preventing rapid
// oscillation between paths.
//
// Two-path policy: paths beyond the first two receive weight zero.
type ECF struct {
	waiting bool
}

// Waiting exposes the hysteresis flag, for observability and tests.
func (e *ECF) Waiting() bool { return e.waiting }

// SelectWeights implements Policy for ECF.
func (e *ECF) SelectWeights(paths []PathSnapshot, sctx SendContext, _ float64) WeightVector {
	if len(paths) == 0 {
		panic("ECF.SelectWeights: empty paths")
	}
	if len(paths) == 1 {
		return oneHot(1, 0)
	}
	if paths[1].SmoothedRTT == 0 {
		return oneHot(len(paths), 1)
	}

	fast, slow := orderByRTT(paths)
	if paths[fast].AvailableWindow() > 0 {
		return oneHot(len(paths), fast)
	}

	k := float64(sctx.BytesQueued)
	rttF := rttSeconds(paths[fast].SmoothedRTT)
	rttS := rttSeconds(paths[slow].SmoothedRTT)
	n := 1 + k/math.Max(1, float64(paths[fast].CWnd))
	delta := math.Max(paths[fast].RTTVar.Seconds(), paths[slow].RTTVar.Seconds())

	waiting := 0.0
	if e.waiting {
		waiting = 1.0
	}
	if n*rttF < (1+waiting)*(rttS+delta) {
		// Finishing on the fast path alone looks quicker. Only commit to
		// waiting when draining the buffer over the slow path would take at
		// least twice the fast-path estimate.
		if k/math.Max(1, float64(paths[slow].CWnd))*rttS >= 2*rttF+delta {
			e.waiting = true
			return oneHot(len(paths), fast)
		}
		return oneHot(len(paths), slow)
	}
	e.waiting = false
	return oneHot(len(paths), slow)
}
