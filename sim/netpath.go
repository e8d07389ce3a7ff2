package sim

import (
	"time"

	"github.com/PTS0118/mpquic-ns3/sched"
)

// PathConfig describes one simulated subflow's link characteristics.
type PathConfig struct {
	BandwidthMbps float64       `yaml:"bandwidth_mbps"` // link rate
	PropDelay     time.Duration `yaml:"prop_delay"`     // one-way propagation delay
	InitialCWnd   int64         `yaml:"initial_cwnd"`   // bytes; 0 = 10 segments
	SegmentSize   int64         `yaml:"segment_size"`   // bytes; 0 = 1460
}

func (c PathConfig) withDefaults() PathConfig {
	if c.SegmentSize == 0 {
		c.SegmentSize = 1460
	}
	if c.InitialCWnd == 0 {
		c.InitialCWnd = 10 * c.SegmentSize
	}
	return c
}

// NetPath simulates one subflow: a fixed-rate link with one-way propagation
// delay and a FIFO serialization queue, plus a small AIMD congestion
// controller that produces the telemetry the scheduler consumes (smoothed
// RTT, RTT variance, congestion window, bytes in flight). The scheduler is
// the subject under study here, so the controller is deliberately simple:
// slow start to a threshold, additive increase after, multiplicative
// decrease on a delay signal.
type NetPath struct {
	id  sched.PathID
	cfg PathConfig

	cwnd          int64
	ssthresh      int64
	bytesInFlight int64

	srtt      time.Duration
	rttvar    time.Duration
	sampled   bool
	busyUntil int64 // tick the link finishes serializing queued bytes
}

// NewNetPath creates a path in initial slow start with no RTT sample.
func NewNetPath(id sched.PathID, cfg PathConfig) *NetPath {
	cfg = cfg.withDefaults()
	return &NetPath{
		id:       id,
		cfg:      cfg,
		cwnd:     cfg.InitialCWnd,
		ssthresh: 64 * 1024,
	}
}

// Snapshot returns the path's current state in scheduler form.
func (p *NetPath) Snapshot() sched.PathSnapshot {
	return sched.PathSnapshot{
		ID:            p.id,
		SmoothedRTT:   p.srtt,
		RTTVar:        p.rttvar,
		CWnd:          p.cwnd,
		BytesInFlight: p.bytesInFlight,
		SegmentSize:   p.cfg.SegmentSize,
	}
}

// Send queues bytes onto the link at tick now and returns the tick the
// acknowledgement comes back: serialization behind whatever is already
// queued, plus the round trip.
func (p *NetPath) Send(now int64, bytes int64) int64 {
	serialization := int64(float64(bytes*8) / p.cfg.BandwidthMbps) // Mbps ↔ bytes/µs cancel out
	depart := max(now, p.busyUntil) + serialization
	p.busyUntil = depart
	p.bytesInFlight += bytes
	return depart + 2*p.cfg.PropDelay.Microseconds()
}

// Ack processes the acknowledgement of bytes with the measured rttSample.
func (p *NetPath) Ack(bytes int64, rttSample time.Duration) {
	p.bytesInFlight -= bytes
	if p.bytesInFlight < 0 {
		p.bytesInFlight = 0
	}
	p.updateRTT(rttSample)

	// Delay signal: an RTT well above baseline means the serialization
	// queue is building, so back off instead of growing.
	baseline := 2 * p.cfg.PropDelay
	if rttSample > 2*baseline {
		p.ssthresh = max(p.cwnd/2, 2*p.cfg.SegmentSize)
		p.cwnd = p.ssthresh
		return
	}

	if p.cwnd < p.ssthresh {
		p.cwnd += min(bytes, p.cfg.SegmentSize)
	} else {
		p.cwnd += p.cfg.SegmentSize * p.cfg.SegmentSize / p.cwnd
	}
}

// updateRTT maintains smoothed RTT and variance per the standard
// exponential estimators (RFC 6298).
func (p *NetPath) updateRTT(sample time.Duration) {
	if !p.sampled {
		p.srtt = sample
		p.rttvar = sample / 2
		p.sampled = true
		return
	}
	diff := p.srtt - sample
	if diff < 0 {
		diff = -diff
	}
	p.rttvar = 3*p.rttvar/4 + diff/4
	p.srtt = 7*p.srtt/8 + sample/8
}
