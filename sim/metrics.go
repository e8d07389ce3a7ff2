package sim

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// highPriorityCutoff splits tasks into the urgent and background buckets
// for the latency report.
const highPriorityCutoff = 0.5

// Metrics aggregates statistics about the simulation for final reporting:
// task completion latencies split by priority bucket, and how the bytes
// were distributed across paths.
type Metrics struct {
	CompletedTasks int
	TotalBytes     int64
	BytesPerPath   map[int]int64

	latenciesMs     []float64
	highLatenciesMs []float64
	lowLatenciesMs  []float64
}

// NewMetrics creates an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{BytesPerPath: make(map[int]int64)}
}

// ObserveSend accounts bytes handed to a path.
func (m *Metrics) ObserveSend(path int, bytes int64) {
	m.BytesPerPath[path] += bytes
	m.TotalBytes += bytes
}

// ObserveTask records a fully acknowledged task.
func (m *Metrics) ObserveTask(t *Task, now int64) {
	m.CompletedTasks++
	latMs := float64(now-t.ArrivalTick) / 1000.0
	m.latenciesMs = append(m.latenciesMs, latMs)
	if t.Priority >= highPriorityCutoff {
		m.highLatenciesMs = append(m.highLatenciesMs, latMs)
	} else {
		m.lowLatenciesMs = append(m.lowLatenciesMs, latMs)
	}
}

// LatencyStats holds a summary of one latency population, in milliseconds.
type LatencyStats struct {
	Count int
	Mean  float64
	P50   float64
	P95   float64
	P99   float64
}

func summarize(latencies []float64) LatencyStats {
	if len(latencies) == 0 {
		return LatencyStats{}
	}
	sorted := append([]float64(nil), latencies...)
	sort.Float64s(sorted)
	return LatencyStats{
		Count: len(sorted),
		Mean:  stat.Mean(sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:   stat.Quantile(0.95, stat.Empirical, sorted, nil),
		P99:   stat.Quantile(0.99, stat.Empirical, sorted, nil),
	}
}

// TaskLatency returns the all-tasks latency summary.
func (m *Metrics) TaskLatency() LatencyStats { return summarize(m.latenciesMs) }

// HighPriorityLatency returns the summary for tasks with priority >= 0.5.
func (m *Metrics) HighPriorityLatency() LatencyStats { return summarize(m.highLatenciesMs) }

// LowPriorityLatency returns the summary for tasks with priority < 0.5.
func (m *Metrics) LowPriorityLatency() LatencyStats { return summarize(m.lowLatenciesMs) }

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print(endTick int64) {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Tasks      : %d\n", m.CompletedTasks)
	fmt.Printf("Total Bytes          : %d\n", m.TotalBytes)
	if endTick > 0 {
		throughputMbps := float64(m.TotalBytes*8) / float64(endTick)
		fmt.Printf("Aggregate Throughput : %.2f Mbps\n", throughputMbps)
	}
	for path := 0; path < len(m.BytesPerPath); path++ {
		share := 0.0
		if m.TotalBytes > 0 {
			share = float64(m.BytesPerPath[path]) / float64(m.TotalBytes)
		}
		fmt.Printf("Path %d Bytes         : %d (%.1f%%)\n", path, m.BytesPerPath[path], 100*share)
	}
	printLatency := func(label string, s LatencyStats) {
		if s.Count == 0 {
			return
		}
		fmt.Printf("%s: n=%d mean=%.2fms p50=%.2fms p95=%.2fms p99=%.2fms\n",
			label, s.Count, s.Mean, s.P50, s.P95, s.P99)
	}
	printLatency("Task Latency         ", m.TaskLatency())
	printLatency("High-Priority Latency", m.HighPriorityLatency())
	printLatency("Low-Priority Latency ", m.LowPriorityLatency())
}
