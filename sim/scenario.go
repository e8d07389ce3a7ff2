package sim

import (
	"fmt"
	"time"

	"github.com/PTS0118/mpquic-ns3/sched"
	"github.com/PTS0118/mpquic-ns3/sched/trace"
)

// Scenario describes one complete simulation run: path characteristics,
// workload, scheduler configuration, and observability. Loaded from YAML
// by the CLI or constructed directly in tests.
type Scenario struct {
	Horizon        int64         `yaml:"horizon"`         // ticks (µs); 0 = 60s
	Seed           int64         `yaml:"seed"`            // master RNG seed
	ChunkBytes     int64         `yaml:"chunk_bytes"`     // granule per scheduling decision
	TxBufferBytes  int64         `yaml:"tx_buffer_bytes"` // connection send buffer capacity
	SampleInterval time.Duration `yaml:"sample_interval"` // 0 disables the passive sampler
	TraceLevel     string        `yaml:"trace_level"`     // none | decisions

	Paths    []PathConfig   `yaml:"paths"`
	Workload WorkloadConfig `yaml:"workload"`
	Sched    sched.Config   `yaml:"sched"`
}

// DefaultScenario returns the reference two-path setup: a fast 5ms path
// and a slow 25ms path with asymmetric bandwidth, viewport workload.
func DefaultScenario() Scenario {
	return Scenario{
		Horizon:        60 * 1e6,
		Seed:           42,
		ChunkBytes:     1460,
		TxBufferBytes:  2 * 1024 * 1024,
		SampleInterval: 50 * time.Millisecond,
		TraceLevel:     string(trace.LevelDecisions),
		Paths: []PathConfig{
			{BandwidthMbps: 10, PropDelay: 5 * time.Millisecond},
			{BandwidthMbps: 50, PropDelay: 25 * time.Millisecond},
		},
		Workload: DefaultWorkloadConfig(),
		Sched:    sched.DefaultConfig(),
	}
}

// WithDefaults fills zero-valued fields with the reference defaults.
func (sc Scenario) WithDefaults() Scenario {
	def := DefaultScenario()
	if sc.Horizon == 0 {
		sc.Horizon = def.Horizon
	}
	if sc.ChunkBytes == 0 {
		sc.ChunkBytes = def.ChunkBytes
	}
	if sc.TxBufferBytes == 0 {
		sc.TxBufferBytes = def.TxBufferBytes
	}
	if len(sc.Paths) == 0 {
		sc.Paths = def.Paths
	}
	if sc.Workload.Tasks == 0 {
		sc.Workload = def.Workload
	}
	if sc.Sched == (sched.Config{}) {
		sc.Sched = def.Sched
	}
	return sc
}

// Validate returns an error for unusable scenarios. Called once at the CLI
// boundary before the simulator is built.
func (sc Scenario) Validate() error {
	if sc.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %d", sc.Horizon)
	}
	if sc.ChunkBytes < 0 {
		return fmt.Errorf("chunk bytes must be non-negative, got %d", sc.ChunkBytes)
	}
	if !trace.IsValidLevel(sc.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", sc.TraceLevel)
	}
	for i, p := range sc.Paths {
		if p.BandwidthMbps <= 0 {
			return fmt.Errorf("path %d: bandwidth must be positive, got %v", i, p.BandwidthMbps)
		}
		if p.PropDelay < 0 {
			return fmt.Errorf("path %d: propagation delay must be non-negative, got %v", i, p.PropDelay)
		}
	}
	if err := sc.Sched.Validate(); err != nil {
		return fmt.Errorf("sched config: %w", err)
	}
	return nil
}
