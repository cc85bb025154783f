package wavelet

import (
	"math"
	"math/rand"
	"testing"

	"github.com/278261631/kats-noise-agument/util"
	"github.com/stretchr/testify/assert"
)

func randomImage(height, width int32, seed int64) *util.Matrix[float64] {
	rng := rand.New(rand.NewSource(seed))
	m := util.New2DMatrix[float64](height, width)
	for i := range m.Data {
		m.Data[i] = rng.Float64()*200 - 100
	}
	return m
}

func maxAbsDiff(a, b *util.Matrix[float64]) float64 {
	var max float64
	for i := range a.Data {
		d := math.Abs(a.Data[i] - b.Data[i])
		if d > max {
			max = d
		}
	}
	return max
}

func TestSymIndex(t *testing.T) {
	tests := []struct {
		k        int
		n        int
		expected int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{-1, 5, 0},
		{-2, 5, 1},
		{5, 5, 4},
		{6, 5, 3},
		{-6, 5, 4},
		{10, 5, 0},
		{-1, 1, 0},
		{3, 1, 0},
	}

	for _, tt := range tests {
		result := symIndex(tt.k, tt.n)
		if result != tt.expected {
			t.Errorf("symIndex(%d, %d) = %d; want %d", tt.k, tt.n, result, tt.expected)
		}
	}
}

func TestSubbandLength(t *testing.T) {
	tests := []struct {
		n        int
		f        int
		expected int
	}{
		{64, 2, 32},
		{64, 10, 36},
		{36, 10, 22},
		{63, 4, 33},
		{2, 2, 1},
	}

	for _, tt := range tests {
		result := subbandLength(tt.n, tt.f)
		if result != tt.expected {
			t.Errorf("subbandLength(%d, %d) = %d; want %d", tt.n, tt.f, result, tt.expected)
		}
	}
}

// A decomposition followed by reconstruction with no shrinkage must give
// back the image within floating tolerance for every basis.
func TestRoundTripAllBases(t *testing.T) {
	cases := []struct {
		basis  Basis
		levels int
	}{
		{BasisHaar, 5},
		{BasisDB2, 4},
		{BasisDB4, 3},
		{BasisCoif1, 3},
		{BasisBior22, 4},
		{BasisBior44, 4},
	}

	for _, tc := range cases {
		t.Run(tc.basis.String(), func(t *testing.T) {
			img := randomImage(64, 64, 42)
			tree, err := Decompose(img, tc.basis, tc.levels)
			assert.Nil(t, err)

			rec, err := Reconstruct(tree, tc.basis)
			assert.Nil(t, err)
			assert.Equal(t, img.Height, rec.Height)
			assert.Equal(t, img.Width, rec.Width)
			assert.Less(t, maxAbsDiff(img, rec), 1e-4)
		})
	}
}

func TestRoundTripOddDimensions(t *testing.T) {
	img := randomImage(61, 47, 7)
	tree, err := Decompose(img, BasisBior44, 2)
	assert.Nil(t, err)

	rec, err := Reconstruct(tree, BasisBior44)
	assert.Nil(t, err)
	assert.Equal(t, int32(61), rec.Height)
	assert.Equal(t, int32(47), rec.Width)
	assert.Less(t, maxAbsDiff(img, rec), 1e-4)
}

func TestDecomposeTreeShape(t *testing.T) {
	img := randomImage(64, 48, 3)
	tree, err := Decompose(img, BasisBior44, 3)
	assert.Nil(t, err)

	assert.Equal(t, 3, tree.Levels())
	assert.Equal(t, Approx, tree.Approx.Orientation)

	// 64 -> 36 -> 22 -> 15 and 48 -> 28 -> 18 -> 13, coarsest first.
	expectedH := []int32{15, 22, 36}
	expectedW := []int32{13, 18, 28}
	for i, level := range tree.Detail {
		assert.Len(t, level, 3)
		seen := map[Orientation]bool{}
		for _, sb := range level {
			assert.Equal(t, i+1, sb.Level)
			assert.Equal(t, expectedH[i], sb.Data.Height)
			assert.Equal(t, expectedW[i], sb.Data.Width)
			seen[sb.Orientation] = true
		}
		assert.True(t, seen[Horizontal] && seen[Vertical] && seen[Diagonal])
	}
	assert.Equal(t, expectedH[0], tree.Approx.Data.Height)
	assert.Equal(t, expectedW[0], tree.Approx.Data.Width)
}

func TestDecomposeRejectsExcessiveLevels(t *testing.T) {
	img := randomImage(64, 64, 1)

	_, err := Decompose(img, BasisBior44, 7)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	_, err = Decompose(img, BasisBior44, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)

	// Six levels still fit: 64 -> 36 -> 22 -> 15 -> 12 -> 10 -> 9.
	_, err = Decompose(img, BasisBior44, 6)
	assert.Nil(t, err)
}

func TestValidateLevelsSmallImage(t *testing.T) {
	assert.Nil(t, validateLevels(16, 16, BasisHaar, 3))
	assert.ErrorIs(t, validateLevels(8, 8, BasisBior44, 1), ErrInvalidConfiguration)
	assert.ErrorIs(t, validateLevels(64, 7, BasisDB4, 1), ErrInvalidConfiguration)
}

// Highpass filters must kill a constant signal: every detail coefficient of
// a flat image is zero to machine precision.
func TestConstantImageDetailIsZero(t *testing.T) {
	img := util.New2DMatrix[float64](32, 32)
	img.Fill(7.5)

	for basis := range filterBanks {
		tree, err := Decompose(img, basis, 2)
		assert.Nil(t, err)
		for _, level := range tree.Detail {
			for _, sb := range level {
				for _, v := range sb.Data.Data {
					assert.Less(t, math.Abs(v), 1e-5, "basis %v", basis)
				}
			}
		}
	}
}
