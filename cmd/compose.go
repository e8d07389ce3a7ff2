package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/PTS0118/mpquic-ns3/sched/trace"
	"github.com/PTS0118/mpquic-ns3/sim"
)

// composeScenario builds the effective Scenario: scenario-file values
// first, then any flag the user set explicitly on the command line
// overrides them. Flags the user did not touch never clobber file values.
func composeScenario(cmd *cobra.Command) (sim.Scenario, error) {
	sc := sim.DefaultScenario()

	if scenarioFile != "" {
		data, err := os.ReadFile(scenarioFile)
		if err != nil {
			return sc, fmt.Errorf("read scenario file: %w", err)
		}
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return sc, fmt.Errorf("parse scenario file: %w", err)
		}
	}

	override := func(name string, apply func()) {
		if cmd.Flags().Changed(name) || scenarioFile == "" {
			apply()
		}
	}

	override("policy", func() { sc.Sched.Policy = policy })
	override("seed", func() { sc.Seed = seed })
	override("horizon", func() { sc.Horizon = int64(horizonSec * 1e6) })
	override("trace", func() { sc.TraceLevel = traceLevel })
	override("sample-interval", func() { sc.SampleInterval = sampleInterval })
	override("blest-lambda", func() { sc.Sched.BlestLambda = blestLambda })
	override("blest-var", func() { sc.Sched.BlestVar = blestVar })
	override("exploration", func() { sc.Sched.Exploration = exploration })

	linkFlags := cmd.Flags().Changed("fast-bw") || cmd.Flags().Changed("fast-delay") ||
		cmd.Flags().Changed("slow-bw") || cmd.Flags().Changed("slow-delay")
	if linkFlags || scenarioFile == "" {
		sc.Paths = []sim.PathConfig{
			{BandwidthMbps: fastBandwidthMbps, PropDelay: fastDelay},
			{BandwidthMbps: slowBandwidthMbps, PropDelay: slowDelay},
		}
	}

	override("tasks", func() { sc.Workload.Tasks = numTasks })
	override("task-bytes", func() { sc.Workload.MeanSizeBytes = meanTaskBytes })
	override("rate", func() { sc.Workload.RatePerSec = taskRatePerSec })
	override("priority-profile", func() { sc.Workload.PriorityProfile = priorityProfile })
	override("viewport-share", func() { sc.Workload.ViewportShare = viewportShare })

	return sc, nil
}

// writeTraceFiles exports the run's trace as CSVs for offline analysis,
// matching the layout the analysis scripts expect.
func writeTraceFiles(dir string, st *trace.ScheduleTrace) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	files := []struct {
		name  string
		write func(f *os.File) error
	}{
		{"decisions.csv", func(f *os.File) error { return trace.WriteDecisionsCSV(f, st) }},
		{"outcomes.csv", func(f *os.File) error { return trace.WriteOutcomesCSV(f, st) }},
		{"path_stats.csv", func(f *os.File) error { return trace.WritePathStatsCSV(f, st) }},
	}
	for _, spec := range files {
		f, err := os.Create(filepath.Join(dir, spec.name))
		if err != nil {
			return fmt.Errorf("create %s: %w", spec.name, err)
		}
		if err := spec.write(f); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", spec.name, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close %s: %w", spec.name, err)
		}
	}
	return nil
}
