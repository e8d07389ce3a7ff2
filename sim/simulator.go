// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"

	"github.com/PTS0118/mpquic-ns3/sched"
	"github.com/PTS0118/mpquic-ns3/sched/trace"
)

// EventQueue implements heap.Interface and orders events by timestamp.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventQueue []Event

func (eq EventQueue) Len() int           { return len(eq) }
func (eq EventQueue) Less(i, j int) bool { return eq[i].Timestamp() < eq[j].Timestamp() }
func (eq EventQueue) Swap(i, j int)      { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Simulator is the core object that holds simulation time, system state,
// and the event loop. Time is in microsecond ticks.
type Simulator struct {
	Clock      int64
	Horizon    int64
	EventQueue EventQueue

	Conn    *Connection
	Metrics *Metrics
	Trace   *trace.ScheduleTrace

	remainingTasks int
}

// NewSimulator builds paths, connection, scheduler, and workload from the
// scenario and schedules the initial events.
func NewSimulator(sc Scenario) *Simulator {
	sc = sc.WithDefaults()

	paths := make([]*NetPath, len(sc.Paths))
	for i, pc := range sc.Paths {
		paths[i] = NewNetPath(sched.PathID(i), pc)
	}

	st := trace.New(trace.Level(sc.TraceLevel))
	metrics := NewMetrics()
	conn := NewConnection(paths, sc.Sched, st, metrics, sc.ChunkBytes, sc.TxBufferBytes)

	s := &Simulator{
		Horizon:    sc.Horizon,
		EventQueue: make(EventQueue, 0),
		Conn:       conn,
		Metrics:    metrics,
		Trace:      st,
	}
	conn.engine.SetDecisionObserver(conn.decisionObserver(func() int64 { return s.Clock }))

	rng := NewPartitionedRNG(sc.Seed)
	tasks := GenerateTasks(sc.Workload, rng.ForSubsystem(SubsystemWorkload), rng.ForSubsystem(SubsystemPriority))
	s.remainingTasks = len(tasks)
	for _, t := range tasks {
		s.Schedule(&TaskArrivalEvent{time: t.ArrivalTick, Task: t})
	}

	if interval := sc.SampleInterval.Microseconds(); interval > 0 {
		s.Schedule(&PathSampleEvent{time: interval, Interval: interval})
	}
	return s
}

// Schedule pushes an event into the simulator's EventQueue.
func (s *Simulator) Schedule(ev Event) {
	heap.Push(&s.EventQueue, ev)
}

// Run executes events in timestamp order until the queue drains or the
// horizon is reached, then tears the connection down.
func (s *Simulator) Run() {
	for len(s.EventQueue) > 0 {
		ev := heap.Pop(&s.EventQueue).(Event)
		s.Clock = ev.Timestamp()
		if s.Clock > s.Horizon {
			break
		}
		logrus.Debugf("[tick %07d] Executing %T", s.Clock, ev)
		ev.Execute(s)
	}
	s.Conn.Close()
	logrus.Infof("[tick %07d] Simulation ended", s.Clock)
}

// taskCompleted is called once per fully acknowledged task.
func (s *Simulator) taskCompleted() {
	s.remainingTasks--
}
