package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/PTS0118/mpquic-ns3/sched"
)

func TestScenario_WithDefaults(t *testing.T) {
	sc := Scenario{}.WithDefaults()

	assert.Equal(t, int64(60*1e6), sc.Horizon)
	assert.Equal(t, int64(1460), sc.ChunkBytes)
	assert.Equal(t, int64(2*1024*1024), sc.TxBufferBytes)
	assert.Len(t, sc.Paths, 2)
	assert.Equal(t, 200, sc.Workload.Tasks)
	assert.Equal(t, sched.PolicyMinRTT, sc.Sched.Policy)
}

func TestScenario_WithDefaultsKeepsExplicitValues(t *testing.T) {
	sc := Scenario{
		Horizon: 5 * 1e6,
		Paths:   []PathConfig{{BandwidthMbps: 100, PropDelay: time.Millisecond}},
	}.WithDefaults()

	assert.Equal(t, int64(5*1e6), sc.Horizon)
	require.Len(t, sc.Paths, 1)
	assert.Equal(t, 100.0, sc.Paths[0].BandwidthMbps)
}

func TestScenario_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr string
	}{
		{"default is valid", func(sc *Scenario) {}, ""},
		{"negative horizon", func(sc *Scenario) { sc.Horizon = -1 }, "horizon"},
		{"negative chunk", func(sc *Scenario) { sc.ChunkBytes = -1 }, "chunk"},
		{"unknown trace level", func(sc *Scenario) { sc.TraceLevel = "everything" }, "trace level"},
		{"zero bandwidth", func(sc *Scenario) { sc.Paths[0].BandwidthMbps = 0 }, "bandwidth"},
		{"negative delay", func(sc *Scenario) { sc.Paths[1].PropDelay = -time.Second }, "propagation delay"},
		{"bad policy", func(sc *Scenario) { sc.Sched.Policy = "bogus" }, "sched config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := DefaultScenario()
			tt.mutate(&sc)
			err := sc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestScenario_YAMLRoundTrip(t *testing.T) {
	src := `
horizon: 10000000
seed: 7
trace_level: decisions
paths:
  - bandwidth_mbps: 10
    prop_delay: 5ms
  - bandwidth_mbps: 50
    prop_delay: 25ms
workload:
  tasks: 20
  mean_size_bytes: 8000
sched:
  policy: blest
  blest_lambda: 500
`
	var sc Scenario
	require.NoError(t, yaml.Unmarshal([]byte(src), &sc))
	sc = sc.WithDefaults()

	assert.Equal(t, int64(10*1e6), sc.Horizon)
	assert.Equal(t, int64(7), sc.Seed)
	require.Len(t, sc.Paths, 2)
	assert.Equal(t, 5*time.Millisecond, sc.Paths[0].PropDelay)
	assert.Equal(t, 20, sc.Workload.Tasks)
	assert.Equal(t, sched.PolicyBLEST, sc.Sched.Policy)
	assert.Equal(t, 500.0, sc.Sched.BlestLambda)
	assert.NoError(t, sc.Validate())
}
