package sched

import "math"

// Fixed-size 6-dimensional linear algebra for the Peekaboo ridge-regression
// models. The design matrix A = I + Σ x·xᵗ is symmetric positive definite by
// construction, so inversion goes through a Cholesky factorization.

// Vec6 is a 6-dimensional column vector.
type Vec6 [6]float64

// Dot returns the inner product v·u.
func (v Vec6) Dot(u Vec6) float64 {
	s := 0.0
	for i := range v {
		s += v[i] * u[i]
	}
	return s
}

// AddScaled accumulates v += a·x.
func (v *Vec6) AddScaled(a float64, x Vec6) {
	for i := range v {
		v[i] += a * x[i]
	}
}

// Mat6 is a 6×6 matrix, row major.
type Mat6 [6][6]float64

// Identity6 returns the 6×6 identity matrix.
func Identity6() Mat6 {
	var m Mat6
	for i := range m {
		m[i][i] = 1.0
	}
	return m
}

// AddOuter accumulates the rank-one update m += x·xᵗ.
func (m *Mat6) AddOuter(x Vec6) {
	for i := range m {
		for j := range m[i] {
			m[i][j] += x[i] * x[j]
		}
	}
}

// MulVec returns m·x.
func (m Mat6) MulVec(x Vec6) Vec6 {
	var out Vec6
	for i := range m {
		s := 0.0
		for j := range m[i] {
			s += m[i][j] * x[j]
		}
		out[i] = s
	}
	return out
}

// Quadratic returns the quadratic form xᵗ·m·x.
func (m Mat6) Quadratic(x Vec6) float64 {
	return x.Dot(m.MulVec(x))
}

// cholesky factors m = L·Lᵗ with L lower triangular. Panics if m is not
// positive definite; the Peekaboo design matrix always is.
func (m Mat6) cholesky() Mat6 {
	var l Mat6
	for i := 0; i < 6; i++ {
		for j := 0; j <= i; j++ {
			s := m[i][j]
			for k := 0; k < j; k++ {
				s -= l[i][k] * l[j][k]
			}
			if i == j {
				if s <= 0 {
					panic("Mat6.cholesky: matrix not positive definite")
				}
				l[i][i] = math.Sqrt(s)
			} else {
				l[i][j] = s / l[j][j]
			}
		}
	}
	return l
}

// Inverse returns m⁻¹ for a symmetric positive-definite m, computed via
// Cholesky factorization: m⁻¹ = L⁻ᵗ·L⁻¹.
func (m Mat6) Inverse() Mat6 {
	l := m.cholesky()

	// Invert the lower-triangular factor by forward substitution.
	var linv Mat6
	for i := 0; i < 6; i++ {
		linv[i][i] = 1.0 / l[i][i]
		for j := 0; j < i; j++ {
			s := 0.0
			for k := j; k < i; k++ {
				s -= l[i][k] * linv[k][j]
			}
			linv[i][j] = s / l[i][i]
		}
	}

	// m⁻¹ = Lᵗ⁻¹·L⁻¹; exploit the triangular structure.
	var inv Mat6
	for i := 0; i < 6; i++ {
		for j := 0; j <= i; j++ {
			s := 0.0
			for k := i; k < 6; k++ {
				s += linv[k][i] * linv[k][j]
			}
			inv[i][j] = s
			inv[j][i] = s
		}
	}
	return inv
}
