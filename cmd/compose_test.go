package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PTS0118/mpquic-ns3/sched"
	"github.com/PTS0118/mpquic-ns3/sched/trace"
)

func TestComposeScenario_FlagDefaults(t *testing.T) {
	// GIVEN no scenario file and no flags set
	scenarioFile = ""

	sc, err := composeScenario(runCmd)
	require.NoError(t, err)

	assert.Equal(t, sched.PolicyMinRTT, sc.Sched.Policy)
	assert.Equal(t, int64(42), sc.Seed)
	assert.Equal(t, int64(60*1e6), sc.Horizon)
	require.Len(t, sc.Paths, 2)
	assert.Equal(t, 10.0, sc.Paths[0].BandwidthMbps)
	assert.Equal(t, 50.0, sc.Paths[1].BandwidthMbps)
	assert.Equal(t, 200, sc.Workload.Tasks)
	assert.NoError(t, sc.Validate())
}

func TestComposeScenario_FileThenFlagOverride(t *testing.T) {
	// GIVEN a scenario file selecting ECF with a single path
	dir := t.TempDir()
	file := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
seed: 99
paths:
  - bandwidth_mbps: 20
    prop_delay: 10ms
workload:
  tasks: 50
sched:
  policy: ecf
`), 0o644))
	scenarioFile = file
	defer func() { scenarioFile = "" }()

	// WHEN only --seed is set on the command line
	require.NoError(t, runCmd.Flags().Set("seed", "7"))

	sc, err := composeScenario(runCmd)
	require.NoError(t, err)

	// THEN the flag wins for seed, file values survive everywhere else
	assert.Equal(t, int64(7), sc.Seed)
	assert.Equal(t, sched.PolicyECF, sc.Sched.Policy)
	assert.Equal(t, 50, sc.Workload.Tasks)
	require.Len(t, sc.Paths, 1)
	assert.Equal(t, 20.0, sc.Paths[0].BandwidthMbps)
}

func TestComposeScenario_MissingFile(t *testing.T) {
	scenarioFile = filepath.Join(t.TempDir(), "absent.yaml")
	defer func() { scenarioFile = "" }()

	_, err := composeScenario(runCmd)
	assert.Error(t, err)
}

func TestWriteTraceFiles(t *testing.T) {
	st := trace.New(trace.LevelDecisions)
	st.RecordDecision(trace.DecisionRecord{Tick: 1000, Weights: []float64{1, 0}})
	st.RecordOutcome(trace.OutcomeRecord{Tick: 2000, Path: 0, Bytes: 1460})
	st.RecordSample(trace.SampleRecord{Tick: 3000})

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, writeTraceFiles(dir, st))

	for _, name := range []string{"decisions.csv", "outcomes.csv", "path_stats.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.NotEmpty(t, data, name)
	}
}
