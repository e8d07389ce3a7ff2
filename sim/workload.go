package sim

import (
	"math"
	"math/rand"
)

// Task is one unit of application data to transfer, carrying the priority
// hint the application attaches at enqueue time.
type Task struct {
	ID          int
	SizeBytes   int64
	Priority    float64 // urgency in [0,1]
	ArrivalTick int64

	// progress, owned by the connection
	remaining     int64 // bytes not yet handed to a path
	ackedBytes    int64
	CompletedTick int64 // 0 until fully acknowledged
}

// Priority profile names for WorkloadConfig.
const (
	ProfileConstant = "constant"
	ProfileUniform  = "uniform"
	ProfileViewport = "viewport"
)

// WorkloadConfig describes the generated transfer workload.
type WorkloadConfig struct {
	Tasks           int     `yaml:"tasks"`
	MeanSizeBytes   int64   `yaml:"mean_size_bytes"`
	SizeJitter      float64 `yaml:"size_jitter"`      // fraction of mean, uniform
	RatePerSec      float64 `yaml:"rate_per_sec"`     // Poisson arrival rate
	PriorityProfile string  `yaml:"priority_profile"` // constant | uniform | viewport
	ViewportShare   float64 `yaml:"viewport_share"`   // fraction of tiles in view (viewport profile)
}

// DefaultWorkloadConfig returns a small bursty tile workload.
func DefaultWorkloadConfig() WorkloadConfig {
	return WorkloadConfig{
		Tasks:           200,
		MeanSizeBytes:   40000,
		SizeJitter:      0.5,
		RatePerSec:      100,
		PriorityProfile: ProfileViewport,
		ViewportShare:   0.3,
	}
}

// priorityGamma stretches viewport priorities so the high end expands while
// relative order is preserved (p^gamma with gamma < 1).
const priorityGamma = 0.7

// GenerateTasks produces the task list with Poisson arrivals. Deterministic
// given the RNGs: workloadRNG drives arrivals and sizes, priorityRNG drives
// the priority profile, so changing one profile never perturbs arrivals.
func GenerateTasks(cfg WorkloadConfig, workloadRNG, priorityRNG *rand.Rand) []*Task {
	tasks := make([]*Task, 0, cfg.Tasks)
	tick := int64(0)
	for i := 0; i < cfg.Tasks; i++ {
		// Poisson process: exponential interarrival times.
		if cfg.RatePerSec > 0 {
			gap := workloadRNG.ExpFloat64() / cfg.RatePerSec
			tick += int64(gap * 1e6)
		}

		size := float64(cfg.MeanSizeBytes)
		if cfg.SizeJitter > 0 {
			size *= 1 + cfg.SizeJitter*(2*workloadRNG.Float64()-1)
		}
		if size < 1 {
			size = 1
		}

		t := &Task{
			ID:          i,
			SizeBytes:   int64(size),
			Priority:    drawPriority(cfg, priorityRNG),
			ArrivalTick: tick,
		}
		t.remaining = t.SizeBytes
		tasks = append(tasks, t)
	}
	return tasks
}

// drawPriority samples one task's urgency according to the profile.
// The viewport profile models 360-video tile transfer: tiles inside the
// viewport are urgent, the rest are prefetch, and the distribution is
// gamma-stretched toward the high end.
func drawPriority(cfg WorkloadConfig, rng *rand.Rand) float64 {
	switch cfg.PriorityProfile {
	case "", ProfileConstant:
		return 0.5
	case ProfileUniform:
		return rng.Float64()
	case ProfileViewport:
		if rng.Float64() < cfg.ViewportShare {
			return math.Pow(0.85+0.15*rng.Float64(), priorityGamma)
		}
		return math.Pow(0.05+0.25*rng.Float64(), priorityGamma)
	default:
		return 0.5
	}
}
