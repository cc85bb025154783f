package wavelet

import (
	"testing"

	"github.com/278261631/kats-noise-agument/util"
	"github.com/stretchr/testify/assert"
)

func TestShrinkSoft(t *testing.T) {
	tests := []struct {
		value     float64
		threshold float64
		expected  float64
	}{
		{5, 2, 3},
		{-5, 2, -3},
		{1.5, 2, 0},
		{-1.5, 2, 0},
		{2, 2, 0},
		{0, 2, 0},
		{5, 0, 5},
		{-5, 0, -5},
	}

	for _, tt := range tests {
		in := util.New2DMatrixWithContents(1, 1, [][]float64{{tt.value}})
		out := Shrink(in, tt.threshold, ModeSoft)
		if out.Data[0] != tt.expected {
			t.Errorf("Shrink(%f, %f, soft) = %f; want %f", tt.value, tt.threshold, out.Data[0], tt.expected)
		}
	}
}

func TestShrinkHard(t *testing.T) {
	tests := []struct {
		value     float64
		threshold float64
		expected  float64
	}{
		{5, 2, 5},
		{-5, 2, -5},
		{1.5, 2, 0},
		{-1.5, 2, 0},
		{2, 2, 0},
		{0, 2, 0},
		{5, 0, 5},
		{-5, 0, -5},
	}

	for _, tt := range tests {
		in := util.New2DMatrixWithContents(1, 1, [][]float64{{tt.value}})
		out := Shrink(in, tt.threshold, ModeHard)
		if out.Data[0] != tt.expected {
			t.Errorf("Shrink(%f, %f, hard) = %f; want %f", tt.value, tt.threshold, out.Data[0], tt.expected)
		}
	}
}

// Zero threshold is an identity for both modes.
func TestShrinkZeroThresholdIdentity(t *testing.T) {
	in := randomImage(16, 16, 99)
	for _, mode := range []Mode{ModeSoft, ModeHard} {
		out := Shrink(in, 0, mode)
		assert.Equal(t, in.Data, out.Data, "mode %v", mode)
	}
}

func TestShrinkDoesNotModifyInput(t *testing.T) {
	in := util.New2DMatrixWithContents(1, 3, [][]float64{{5, -5, 1}})
	out := Shrink(in, 2, ModeSoft)

	assert.Equal(t, []float64{5, -5, 1}, in.Data)
	assert.Equal(t, []float64{3, -3, 0}, out.Data)
	assert.Equal(t, in.Height, out.Height)
	assert.Equal(t, in.Width, out.Width)
}
