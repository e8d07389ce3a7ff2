package sched

// BLEST (BLocking ESTimation) avoids sending on the slow path when doing so
// would stall the fast path's future delivery at the receiver's reassembly
// point. While the fast path has window it is always used. Otherwise BLEST
// estimates X, the bytes the fast path could push during the RTT
// differential, and compares X scaled by a growing penalty accumulator
// against the room left in the send buffer; if the product exceeds it, the
// slow path is skipped for this opportunity.
//
// Two-path policy: paths beyond the first two receive weight zero.
type BLEST struct {
	lambda         float64 // penalty accumulator, grows while blocking risk persists
	varianceBudget float64 // added to lambda on every blocked evaluation
}

// Lambda exposes the current penalty accumulator, for observability and tests.
func (b *BLEST) Lambda() float64 { return b.lambda }

// SelectWeights implements Policy for BLEST.
func (b *BLEST) SelectWeights(paths []PathSnapshot, sctx SendContext, _ float64) WeightVector {
	if len(paths) == 0 {
		panic("BLEST.SelectWeights: empty paths")
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

	mss := float64(paths[fast].SegmentSize)
	rttF := rttSeconds(paths[fast].SmoothedRTT)
	rttS := rttSeconds(paths[slow].SmoothedRTT)
	rtts := rttS / rttF
	cwndF := float64(paths[fast].CWnd) / mss
	x := mss * (cwndF + (rtts-1)/2) * rtts
	comp := float64(sctx.TxAvailable) - float64(paths[slow].BytesInFlight) - mss

	b.lambda += b.varianceBudget
	if x*b.lambda > comp {
		// Sending on the slow path would block the fast one; defer instead.
		return oneHot(len(paths), fast)
	}
	return oneHot(len(paths), slow)
}
