package wavelet

import (
	"testing"

	"github.com/278261631/kats-noise-agument/util"
	"github.com/stretchr/testify/assert"
)

func TestEstimateSigma(t *testing.T) {
	sb := util.New2DMatrixWithContents(2, 2, [][]float64{
		{1, -2},
		{3, -4},
	})
	// median(|1,2,3,4|) = 2.5
	assert.InDelta(t, 2.5/0.6745, EstimateSigma(sb), 1e-12)
}

func TestEstimateSigmaConstantSubbandIsZero(t *testing.T) {
	sb := util.New2DMatrix[float64](8, 8)
	assert.Equal(t, 0.0, EstimateSigma(sb))

	sb.Fill(3)
	assert.InDelta(t, 3/0.6745, EstimateSigma(sb), 1e-12)
}

func TestEstimateSigmaRobustToOutliers(t *testing.T) {
	sb := util.New2DMatrix[float64](10, 10)
	sb.Fill(1)
	// A handful of huge signal coefficients must not move the estimate.
	sb.Data[0] = 1e6
	sb.Data[1] = -1e6
	sb.Data[2] = 5e5

	assert.InDelta(t, 1/0.6745, EstimateSigma(sb), 1e-12)
}

func TestEstimateGlobalSigmaFlatImage(t *testing.T) {
	img := util.New2DMatrix[float64](32, 32)
	img.Fill(100)

	sigma, err := EstimateGlobalSigma(img, BasisBior44)
	assert.Nil(t, err)
	assert.InDelta(t, 0, sigma, 1e-8)
}

func TestEstimateGlobalSigmaScalesWithNoise(t *testing.T) {
	small, err := EstimateGlobalSigma(randomImage(64, 64, 5), BasisBior44)
	assert.Nil(t, err)

	big := randomImage(64, 64, 5)
	for i := range big.Data {
		big.Data[i] *= 10
	}
	scaled, err := EstimateGlobalSigma(big, BasisBior44)
	assert.Nil(t, err)
	assert.InDelta(t, small*10, scaled, small*1e-6)
	assert.Greater(t, small, 0.0)
}
