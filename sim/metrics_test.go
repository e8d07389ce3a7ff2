package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveSend(t *testing.T) {
	m := NewMetrics()
	m.ObserveSend(0, 1460)
	m.ObserveSend(1, 2920)
	m.ObserveSend(0, 540)

	assert.Equal(t, int64(2000), m.BytesPerPath[0])
	assert.Equal(t, int64(2920), m.BytesPerPath[1])
	assert.Equal(t, int64(4920), m.TotalBytes)
}

func TestMetrics_ObserveTaskSplitsByPriority(t *testing.T) {
	m := NewMetrics()
	urgent := &Task{Priority: 0.9, ArrivalTick: 0}
	background := &Task{Priority: 0.1, ArrivalTick: 0}

	m.ObserveTask(urgent, 10_000)     // 10ms
	m.ObserveTask(background, 40_000) // 40ms
	m.ObserveTask(urgent, 20_000)     // 20ms

	assert.Equal(t, 3, m.CompletedTasks)
	assert.Equal(t, 3, m.TaskLatency().Count)
	assert.Equal(t, 2, m.HighPriorityLatency().Count)
	assert.Equal(t, 1, m.LowPriorityLatency().Count)
	assert.InDelta(t, 15.0, m.HighPriorityLatency().Mean, 1e-9)
	assert.InDelta(t, 40.0, m.LowPriorityLatency().Mean, 1e-9)
}

func TestMetrics_EmptyLatencyStats(t *testing.T) {
	m := NewMetrics()
	assert.Zero(t, m.TaskLatency().Count)
	assert.Zero(t, m.TaskLatency().Mean)
}
