package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/PTS0118/mpquic-ns3/sched"
	"github.com/PTS0118/mpquic-ns3/sched/trace"
	"github.com/PTS0118/mpquic-ns3/sim"
)

var (
	// CLI flags for the simulation run
	scenarioFile   string  // YAML scenario file; flags below override it
	policy         string  // path scheduling policy
	seed           int64   // master seed for workload generation
	horizonSec     float64 // total simulation time in seconds
	logLevel       string  // log verbosity level
	outDir         string  // directory for decision/path CSVs; empty = no files
	traceLevel     string  // trace verbosity (none, decisions)
	sampleInterval time.Duration

	// scheduler tunables
	blestLambda float64 // BLEST initial penalty accumulator
	blestVar    float64 // BLEST per-evaluation penalty growth
	exploration float64 // Peekaboo UCB exploration coefficient

	// two-path link shape (ignored when a scenario file supplies paths)
	fastBandwidthMbps float64
	fastDelay         time.Duration
	slowBandwidthMbps float64
	slowDelay         time.Duration

	// workload shape
	numTasks        int
	meanTaskBytes   int64
	taskRatePerSec  float64
	priorityProfile string
	viewportShare   float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mpquic-sim",
	Short: "Discrete-event simulator for multipath transport scheduling",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a multipath scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		sc, err := composeScenario(cmd)
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		logrus.Infof("Starting simulation: policy=%s paths=%d horizon=%dticks seed=%d",
			sc.Sched.Policy, len(sc.Paths), sc.Horizon, sc.Seed)

		startTime := time.Now()
		s := sim.NewSimulator(sc)
		s.Run()
		s.Metrics.Print(minInt64(s.Clock, s.Horizon))

		summary := trace.Summarize(s.Trace)
		logrus.Infof("Decisions: %d, outcomes: %d, mean hint: %.3f",
			summary.TotalDecisions, summary.TotalOutcomes, summary.MeanHint)

		if outDir != "" {
			if err := writeTraceFiles(outDir, s.Trace); err != nil {
				logrus.Fatalf("Failed to write trace files: %v", err)
			}
			logrus.Infof("Trace files written to %s", outDir)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&scenarioFile, "scenario", "", "YAML scenario file (flags override its values)")
	runCmd.Flags().StringVar(&policy, "policy", sched.PolicyMinRTT, "Scheduling policy (round-robin, min-rtt, blest, ecf, peekaboo, priority-load)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for random task generation")
	runCmd.Flags().Float64Var(&horizonSec, "horizon", 60, "Total simulation horizon (seconds)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outDir, "out-dir", "", "Directory for decisions.csv/outcomes.csv/path_stats.csv")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.LevelDecisions), "Trace level (none, decisions)")
	runCmd.Flags().DurationVar(&sampleInterval, "sample-interval", 50*time.Millisecond, "Passive path telemetry sampling interval (0 disables)")

	// scheduler tunables
	runCmd.Flags().Float64Var(&blestLambda, "blest-lambda", 1000, "BLEST initial penalty accumulator")
	runCmd.Flags().Float64Var(&blestVar, "blest-var", 100, "BLEST per-evaluation penalty growth")
	runCmd.Flags().Float64Var(&exploration, "exploration", 0.8, "Peekaboo UCB exploration coefficient")

	// link shape
	runCmd.Flags().Float64Var(&fastBandwidthMbps, "fast-bw", 10, "Fast path bandwidth (Mbps)")
	runCmd.Flags().DurationVar(&fastDelay, "fast-delay", 5*time.Millisecond, "Fast path one-way propagation delay")
	runCmd.Flags().Float64Var(&slowBandwidthMbps, "slow-bw", 50, "Slow path bandwidth (Mbps)")
	runCmd.Flags().DurationVar(&slowDelay, "slow-delay", 25*time.Millisecond, "Slow path one-way propagation delay")

	// workload shape
	runCmd.Flags().IntVar(&numTasks, "tasks", 200, "Number of transfer tasks")
	runCmd.Flags().Int64Var(&meanTaskBytes, "task-bytes", 40000, "Mean task size (bytes)")
	runCmd.Flags().Float64Var(&taskRatePerSec, "rate", 100, "Task arrival rate (tasks/second)")
	runCmd.Flags().StringVar(&priorityProfile, "priority-profile", sim.ProfileViewport, "Priority profile (constant, uniform, viewport)")
	runCmd.Flags().Float64Var(&viewportShare, "viewport-share", 0.3, "Fraction of tasks in the urgent viewport bucket")

	rootCmd.AddCommand(runCmd)
}
