package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/PTS0118/mpquic-ns3/sched/trace"
)

// Event defines the interface for all simulation events. Each event has a
// Timestamp (in microsecond ticks) and an Execute method that advances
// simulation state when invoked.
type Event interface {
	Timestamp() int64
	Execute(*Simulator)
}

// TaskArrivalEvent represents the application handing a new task to the
// connection's send queue.
type TaskArrivalEvent struct {
	time int64
	Task *Task
}

// Timestamp returns the scheduled time of the TaskArrivalEvent.
func (e *TaskArrivalEvent) Timestamp() int64 { return e.time }

// Execute enqueues the task and pumps the scheduler.
func (e *TaskArrivalEvent) Execute(s *Simulator) {
	logrus.Infof("<< Arrival: task %d (%d bytes, prio %.2f) at %d ticks",
		e.Task.ID, e.Task.SizeBytes, e.Task.Priority, e.time)
	s.Conn.enqueue(e.Task)
	s.Conn.pump(s, e.time)
}

// AckEvent represents the acknowledgement of bytes previously handed to a
// path: the path's telemetry updates, the scheduler receives feedback, and
// sending resumes.
type AckEvent struct {
	time   int64
	Path   int
	Bytes  int64
	SentAt int64
	Task   *Task
}

// Timestamp returns the scheduled time of the AckEvent.
func (e *AckEvent) Timestamp() int64 { return e.time }

// Execute applies the acknowledgement.
func (e *AckEvent) Execute(s *Simulator) {
	s.Conn.handleAck(s, e)
}

// PathSampleEvent is the periodic passive telemetry sampler. It records
// per-path stats and reschedules itself until the connection is torn down
// or the workload completes; it never fires on a closed connection.
type PathSampleEvent struct {
	time     int64
	Interval int64
}

// Timestamp returns the scheduled time of the PathSampleEvent.
func (e *PathSampleEvent) Timestamp() int64 { return e.time }

// Execute records one sample per path and reschedules.
func (e *PathSampleEvent) Execute(s *Simulator) {
	if s.Conn.Closed() {
		return
	}
	for i, p := range s.Conn.paths {
		snap := p.Snapshot()
		s.Trace.RecordSample(trace.SampleRecord{
			Tick: e.time,
			Stat: trace.PathStat{
				Path:            i,
				RTTMs:           float64(snap.SmoothedRTT.Microseconds()) / 1000.0,
				CWnd:            snap.CWnd,
				BytesInFlight:   snap.BytesInFlight,
				AvailableWindow: snap.AvailableWindow(),
			},
		})
	}
	if s.remainingTasks > 0 && e.time < s.Horizon {
		s.Schedule(&PathSampleEvent{time: e.time + e.Interval, Interval: e.Interval})
	}
}
