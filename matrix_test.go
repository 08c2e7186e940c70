package outline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"
)

const eps = 1e-9

func assertMatrix(t *testing.T, want, got Matrix) {
	t.Helper()
	assert.InDeltaSlice(t,
		[]float64{want.A, want.B, want.C, want.D, want.E, want.F},
		[]float64{got.A, got.B, got.C, got.D, got.E, got.F}, eps)
}

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -2), 3, 4, 13, 2},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate 90", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"shear", Shear(1, 0), 3, 4, 7, 4},
		{"scale then translate", Translate(1, 1).Multiply(Scale(2, 2)), 3, 4, 7, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.x, tt.y
			tt.m.Transform(&x, &y)
			assert.InDelta(t, tt.wx, x, eps)
			assert.InDelta(t, tt.wy, y, eps)

			p := tt.m.TransformPoint(Pt(tt.x, tt.y))
			assert.InDelta(t, tt.wx, p.X, eps)
			assert.InDelta(t, tt.wy, p.Y, eps)
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	for _, m := range []Matrix{
		Translate(5, -3),
		Scale(2, 0.5),
		Rotate(0.7).Multiply(Scale(3, 1)).Multiply(Translate(-4, 9)),
		Shear(0.3, -0.2),
	} {
		assertMatrix(t, Identity(), m.Multiply(m.Invert()))
		assertMatrix(t, Identity(), m.Invert().Multiply(m))
	}

	// singular matrices fall back to identity
	assert.True(t, Scale(0, 1).Invert().IsIdentity())
}

func TestMatrixAff3(t *testing.T) {
	m := Rotate(0.4).Multiply(Translate(3, 7))
	assert.Equal(t, f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}, m.Aff3())
	assert.Equal(t, f64.Aff3{1, 0, 2, 0, 1, 5}, Translate(2, 5).Aff3())
}

func TestMatrixProperties(t *testing.T) {
	assert.True(t, Identity().IsIdentity())
	assert.False(t, Translate(1, 0).IsIdentity())
	assert.InDelta(t, 6.0, Scale(2, 3).Determinant(), eps)
	assert.InDelta(t, 2.5, Scale(2, 3).Scaling(), eps)
	assert.InDelta(t, 2.0, Rotate(1.1).Multiply(Scale(2, 2)).Scaling(), eps)
}

func TestPoint(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(2, 2), p.Sub(Pt(1, 2)))
	assert.Equal(t, Pt(6, 8), p.Mul(2))
	assert.Equal(t, 5.0, p.Distance(Point{}))
}
