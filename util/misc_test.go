package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 5, Max(1, 5, 3))
	assert.Equal(t, 1, Min(1, 5, 3))
	assert.Equal(t, -2.5, Min(-2.5, 0.0, 2.5))
	assert.Equal(t, 0, Max[int]())

	nan := Max(1.0, math.NaN(), 3.0)
	assert.True(t, math.IsNaN(nan))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		values   []float64
		expected float64
	}{
		{[]float64{}, 0},
		{[]float64{4}, 4},
		{[]float64{3, 1, 2}, 2},
		{[]float64{4, 1, 3, 2}, 2.5},
		{[]float64{-5, 5}, 0},
	}

	for _, tt := range tests {
		result := Median(tt.values)
		if result != tt.expected {
			t.Errorf("Median(%v) = %f; want %f", tt.values, result, tt.expected)
		}
	}
}

func TestMedianDoesNotReorderInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMedianIgnoringNaNs(t *testing.T) {
	assert.Equal(t, 2.0, MedianIgnoringNaNs([]float64{math.NaN(), 1, 2, 3, math.Inf(-1)}))
	assert.Equal(t, 0.0, MedianIgnoringNaNs([]float64{math.NaN()}))
}

func TestMeanStdDev(t *testing.T) {
	mean, stddev := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	assert.InDelta(t, 5, mean, 1e-12)
	assert.InDelta(t, 2, stddev, 1e-12)

	mean, stddev = MeanStdDev(nil)
	assert.Equal(t, 0.0, mean)
	assert.Equal(t, 0.0, stddev)
}
