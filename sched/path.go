package sched

import "time"

// PathID is a small integer index into the active-path list. It is stable
// only for as long as the path remains active; the transport layer may add
// or remove subflows between scheduling opportunities.
type PathID int

// PathSnapshot is a read-only view of one subflow's congestion state at a
// single scheduling opportunity. Snapshots are produced fresh by the
// transport layer on every call; the scheduler must not cache them.
//
// SmoothedRTT == 0 is a sentinel for "no RTT sample yet", not a real
// zero-latency measurement. Policies special-case it to bootstrap
// measurement on the unprobed path.
type PathSnapshot struct {
	ID            PathID
	SmoothedRTT   time.Duration
	RTTVar        time.Duration
	CWnd          int64 // congestion window, bytes
	BytesInFlight int64
	SegmentSize   int64 // MSS, bytes
}

// AvailableWindow returns the immediately sendable budget on this path:
// max(0, CWnd - BytesInFlight).
func (s PathSnapshot) AvailableWindow() int64 {
	aw := s.CWnd - s.BytesInFlight
	if aw < 0 {
		return 0
	}
	return aw
}

// SendContext carries connection-level send state that some policies need
// in addition to per-path snapshots.
type SendContext struct {
	TxAvailable int64 // total sendable bytes across the connection
	BytesQueued int64 // bytes waiting in the send buffer
}

// epsilonRTT floors non-positive RTT values before they are used in ratios.
// Matches the reference behavior of treating an unsampled RTT as 1ms.
const epsilonRTT = time.Millisecond

// rttSeconds returns the snapshot RTT in seconds, floored to epsilonRTT.
func rttSeconds(d time.Duration) float64 {
	if d <= 0 {
		d = epsilonRTT
	}
	return d.Seconds()
}

// orderByRTT identifies the fast and slow of the first two paths by
// smoothed RTT. Ties go to path 1 as fast, matching the reference ordering
// (path 0 is slow when RTTs are equal).
func orderByRTT(paths []PathSnapshot) (fast, slow int) {
	if paths[0].SmoothedRTT >= paths[1].SmoothedRTT {
		return 1, 0
	}
	return 0, 1
}
