package sched

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityHint_DefaultsToNeutral(t *testing.T) {
	var hint PriorityHint
	assert.Equal(t, 0.5, hint.Get())
}

func TestPriorityHint_ClampsToUnitInterval(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range", 0.7, 0.7},
		{"below zero", -0.3, 0.0},
		{"above one", 1.8, 1.0},
		{"zero", 0.0, 0.0},
		{"one", 1.0, 1.0},
		{"NaN resolves to neutral", math.NaN(), 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hint PriorityHint
			hint.Set(tt.in)
			assert.Equal(t, tt.want, hint.Get())
		})
	}
}

func TestPriorityHint_ReplacesPreviousValue(t *testing.T) {
	var hint PriorityHint
	hint.Set(0.9)
	hint.Set(0.1)
	assert.Equal(t, 0.1, hint.Get())
}
