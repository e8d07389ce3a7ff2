package sched

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMat6_InverseOfIdentity(t *testing.T) {
	inv := Identity6().Inverse()
	assert.Equal(t, Identity6(), inv)
}

func TestMat6_InverseRoundTrip(t *testing.T) {
	// A = I + sum of outer products is symmetric positive definite by
	// construction; A * A^-1 must recover the identity.
	rng := rand.New(rand.NewSource(7))
	a := Identity6()
	for k := 0; k < 10; k++ {
		var x Vec6
		for i := range x {
			x[i] = rng.NormFloat64() * 5
		}
		a.AddOuter(x)
	}

	inv := a.Inverse()
	for i := 0; i < 6; i++ {
		var e Vec6
		e[i] = 1
		got := a.MulVec(inv.MulVec(e))
		for j := 0; j < 6; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			assert.InDelta(t, want, got[j], 1e-9, "entry (%d,%d)", i, j)
		}
	}
}

func TestMat6_QuadraticMatchesDot(t *testing.T) {
	a := Identity6()
	x := Vec6{1, 2, 3, 4, 5, 6}
	assert.InDelta(t, x.Dot(x), a.Quadratic(x), 1e-12)
}

func TestVec6_AddScaled(t *testing.T) {
	v := Vec6{1, 1, 1, 1, 1, 1}
	v.AddScaled(2, Vec6{1, 2, 3, 4, 5, 6})
	assert.Equal(t, Vec6{3, 5, 7, 9, 11, 13}, v)
}

func TestMat6_AddOuter(t *testing.T) {
	var m Mat6
	m.AddOuter(Vec6{1, 2, 0, 0, 0, 0})
	assert.Equal(t, 1.0, m[0][0])
	assert.Equal(t, 2.0, m[0][1])
	assert.Equal(t, 2.0, m[1][0])
	assert.Equal(t, 4.0, m[1][1])
}
