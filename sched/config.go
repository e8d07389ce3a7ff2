package sched

import (
	"fmt"
	"math"
)

// Config groups the scheduler tunables, set once per connection at
// construction. It is immutable after validation; policies copy what they
// need out of it.
type Config struct {
	Policy      string  `yaml:"policy"`       // one of the Policy* names; empty = min-rtt
	BlestLambda float64 `yaml:"blest_lambda"` // BLEST initial penalty accumulator
	BlestVar    float64 `yaml:"blest_var"`    // BLEST per-evaluation penalty growth
	Exploration float64 `yaml:"exploration"`  // Peekaboo UCB exploration coefficient
}

// DefaultConfig returns the reference tuning: min-rtt policy, BLEST
// lambda=1000 var=100, Peekaboo exploration 0.8.
func DefaultConfig() Config {
	return Config{
		Policy:      PolicyMinRTT,
		BlestLambda: 1000,
		BlestVar:    100,
		Exploration: defaultExploration,
	}
}

// Validate returns an error if the config is unusable. Called once at
// startup; the scheduler itself never re-validates.
func (c Config) Validate() error {
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("unknown scheduling policy %q", c.Policy)
	}
	if c.BlestLambda < 0 || math.IsNaN(c.BlestLambda) || math.IsInf(c.BlestLambda, 0) {
		return fmt.Errorf("blest lambda must be a finite non-negative number, got %v", c.BlestLambda)
	}
	if c.BlestVar < 0 || math.IsNaN(c.BlestVar) || math.IsInf(c.BlestVar, 0) {
		return fmt.Errorf("blest variance budget must be a finite non-negative number, got %v", c.BlestVar)
	}
	if c.Exploration < 0 || math.IsNaN(c.Exploration) || math.IsInf(c.Exploration, 0) {
		return fmt.Errorf("exploration coefficient must be a finite non-negative number, got %v", c.Exploration)
	}
	return nil
}
