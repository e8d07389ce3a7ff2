package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/PTS0118/mpquic-ns3/sched"
	"github.com/PTS0118/mpquic-ns3/sched/trace"
)

// Connection drives one multipath transfer: it owns the paths, the task
// send queue, and the scheduling engine. It implements the engine's
// PathTelemetryProvider, so every scheduling call sees fresh snapshots.
//
// All methods run on the simulator's single event sequence; outcome
// feedback for a send is always processed (in its AckEvent) before the
// next scheduling decision.
type Connection struct {
	engine  *sched.Engine
	paths   []*NetPath
	sendQ   []*Task
	queued  int64 // bytes not yet handed to a path, across sendQ
	metrics *Metrics
	trace   *trace.ScheduleTrace

	chunkBytes    int64
	txBufferBytes int64
	closed        bool
}

// NewConnection wires paths, scheduler config, and observability together.
func NewConnection(paths []*NetPath, cfg sched.Config, st *trace.ScheduleTrace, metrics *Metrics, chunkBytes, txBufferBytes int64) *Connection {
	c := &Connection{
		paths:         paths,
		metrics:       metrics,
		trace:         st,
		chunkBytes:    chunkBytes,
		txBufferBytes: txBufferBytes,
	}
	c.engine = sched.NewEngine(c, cfg)
	return c
}

// Engine exposes the scheduling engine (priority hint surface, feedback sink).
func (c *Connection) Engine() *sched.Engine { return c.engine }

// ActivePaths implements sched.PathTelemetryProvider.
func (c *Connection) ActivePaths() []sched.PathSnapshot {
	snaps := make([]sched.PathSnapshot, len(c.paths))
	for i, p := range c.paths {
		snaps[i] = p.Snapshot()
	}
	return snaps
}

// SendContext implements sched.PathTelemetryProvider.
func (c *Connection) SendContext() sched.SendContext {
	avail := c.txBufferBytes - c.queued
	if avail < 0 {
		avail = 0
	}
	return sched.SendContext{TxAvailable: avail, BytesQueued: c.queued}
}

// Close marks the connection torn down. The periodic sampler checks this
// and stops rescheduling, so it can never observe released scheduler state.
func (c *Connection) Close() { c.closed = true }

// Closed reports whether the connection has been torn down.
func (c *Connection) Closed() bool { return c.closed }

// enqueue appends an arriving task to the send queue.
func (c *Connection) enqueue(t *Task) {
	c.sendQ = append(c.sendQ, t)
	c.queued += t.remaining
}

// pump makes scheduling decisions and hands task bytes to paths until the
// queue drains or every path's window is exhausted. Each decision covers at
// most one chunk of the head task, whose priority sets the hint.
func (c *Connection) pump(s *Simulator, now int64) {
	for len(c.sendQ) > 0 {
		head := c.sendQ[0]
		c.engine.SetPriorityHint(head.Priority)

		weights := c.engine.SelectWeights()
		if weights == nil {
			// No active paths; retry once the transport brings one up.
			return
		}

		granule := min(c.chunkBytes, head.remaining)
		sent := int64(0)
		for i, w := range weights {
			if w <= 0 {
				continue
			}
			alloc := int64(w*float64(granule) + 0.5)
			if rest := head.remaining - sent; alloc > rest {
				alloc = rest
			}
			if aw := c.paths[i].Snapshot().AvailableWindow(); alloc > aw {
				alloc = aw
			}
			if alloc <= 0 {
				continue
			}

			ackAt := c.paths[i].Send(now, alloc)
			c.metrics.ObserveSend(i, alloc)
			s.Schedule(&AckEvent{time: ackAt, Path: i, Bytes: alloc, SentAt: now, Task: head})
			sent += alloc
		}

		if sent == 0 {
			// Every candidate is window-limited; the next ack re-pumps.
			return
		}
		head.remaining -= sent
		c.queued -= sent
		if head.remaining == 0 {
			c.sendQ = c.sendQ[1:]
		}
	}
}

// handleAck applies one acknowledgement: update the path's congestion
// state, feed the outcome back into the scheduler, then resume pumping.
func (c *Connection) handleAck(s *Simulator, e *AckEvent) {
	rttSample := time.Duration(e.time-e.SentAt) * time.Microsecond
	c.paths[e.Path].Ack(e.Bytes, rttSample)

	c.engine.ReportOutcome(sched.Outcome{
		Path:        sched.PathID(e.Path),
		SentAt:      e.SentAt,
		CompletedAt: e.time,
		Bytes:       e.Bytes,
	})
	c.trace.RecordOutcome(trace.OutcomeRecord{
		Tick:      e.time,
		Path:      e.Path,
		Bytes:     e.Bytes,
		ElapsedMs: float64(e.time-e.SentAt) / 1000.0,
	})

	e.Task.ackedBytes += e.Bytes
	if e.Task.ackedBytes >= e.Task.SizeBytes && e.Task.CompletedTick == 0 {
		e.Task.CompletedTick = e.time
		c.metrics.ObserveTask(e.Task, e.time)
		s.taskCompleted()
		logrus.Infof("Finished task: ID: %d at time: %d", e.Task.ID, e.time)
	}

	c.pump(s, e.time)
}

// decisionObserver converts engine decisions into trace records.
func (c *Connection) decisionObserver(clock func() int64) sched.DecisionObserver {
	return func(d sched.Decision) {
		if !c.trace.Enabled() {
			return
		}
		stats := make([]trace.PathStat, len(d.Paths))
		for i, p := range d.Paths {
			stats[i] = trace.PathStat{
				Path:            int(p.ID),
				RTTMs:           float64(p.SmoothedRTT.Microseconds()) / 1000.0,
				CWnd:            p.CWnd,
				BytesInFlight:   p.BytesInFlight,
				AvailableWindow: p.AvailableWindow(),
			}
		}
		c.trace.RecordDecision(trace.DecisionRecord{
			Tick:    clock(),
			Policy:  c.engine.PolicyName(),
			Hint:    d.Hint,
			Chosen:  d.Weights.Best(),
			Weights: append([]float64(nil), d.Weights...),
			Paths:   stats,
		})
	}
}
