package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testPath() *NetPath {
	return NewNetPath(0, PathConfig{BandwidthMbps: 10, PropDelay: 5 * time.Millisecond})
}

func TestNetPath_Defaults(t *testing.T) {
	// GIVEN a config with zero segment size and cwnd
	p := testPath()
	snap := p.Snapshot()

	// THEN defaults apply: 1460-byte segments, 10-segment initial window
	assert.Equal(t, int64(1460), snap.SegmentSize)
	assert.Equal(t, int64(14600), snap.CWnd)
	assert.Zero(t, snap.BytesInFlight)
	assert.Zero(t, snap.SmoothedRTT)
}

func TestNetPath_SendSerializationAndRTT(t *testing.T) {
	p := testPath()

	// WHEN one segment goes out on an idle 10 Mbps link
	ackAt := p.Send(0, 1460)

	// THEN serialization is 1460*8/10 = 1168µs plus 10ms round trip
	assert.Equal(t, int64(1168+10000), ackAt)
	assert.Equal(t, int64(1460), p.Snapshot().BytesInFlight)

	// AND a second segment queues behind the first
	ackAt2 := p.Send(0, 1460)
	assert.Equal(t, int64(2*1168+10000), ackAt2)
}

func TestNetPath_AckGrowsWindowInSlowStart(t *testing.T) {
	p := testPath()
	before := p.Snapshot().CWnd

	p.Send(0, 1460)
	p.Ack(1460, 11*time.Millisecond)

	snap := p.Snapshot()
	assert.Equal(t, before+1460, snap.CWnd)
	assert.Zero(t, snap.BytesInFlight)
	assert.Equal(t, 11*time.Millisecond, snap.SmoothedRTT)
	assert.Equal(t, 5500*time.Microsecond, snap.RTTVar)
}

func TestNetPath_RTTSmoothing(t *testing.T) {
	p := testPath()
	p.Ack(0, 10*time.Millisecond)

	// Second sample: srtt = 7/8*10ms + 1/8*18ms, rttvar = 3/4*5ms + 1/4*8ms
	p.Ack(0, 18*time.Millisecond)
	snap := p.Snapshot()
	assert.Equal(t, 11*time.Millisecond, snap.SmoothedRTT)
	assert.Equal(t, 5750*time.Microsecond, snap.RTTVar)
}

func TestNetPath_DelaySignalBacksOff(t *testing.T) {
	p := testPath()

	// GIVEN a sample far above the 10ms baseline (queue building)
	p.Ack(0, 25*time.Millisecond)

	// THEN the window halves instead of growing
	snap := p.Snapshot()
	assert.Equal(t, int64(7300), snap.CWnd)
}

func TestNetPath_CongestionAvoidanceIsAdditive(t *testing.T) {
	p := NewNetPath(0, PathConfig{
		BandwidthMbps: 10,
		PropDelay:     5 * time.Millisecond,
		InitialCWnd:   128 * 1024, // above ssthresh
	})
	before := p.Snapshot().CWnd

	p.Ack(1460, 11*time.Millisecond)

	// 1460²/131072 = 16 bytes per ack, not a full segment
	growth := p.Snapshot().CWnd - before
	assert.Equal(t, int64(1460*1460/(128*1024)), growth)
	assert.Less(t, growth, int64(1460))
}

func TestNetPath_InFlightNeverNegative(t *testing.T) {
	p := testPath()
	p.Ack(5000, 11*time.Millisecond)
	assert.Zero(t, p.Snapshot().BytesInFlight)
}
