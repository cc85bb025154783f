package katsnoise

import (
	"testing"

	"github.com/278261631/kats-noise-agument/options"
	"github.com/278261631/kats-noise-agument/wavelet"
	"github.com/stretchr/testify/assert"
)

func TestDenoiseFacade(t *testing.T) {
	image := make([][]float64, 64)
	for y := range image {
		row := make([]float64, 64)
		for x := range row {
			row[x] = float64(y%7) + float64(x%5)
		}
		image[y] = row
	}

	denoised, noise, err := Denoise(image, nil)
	assert.Nil(t, err)
	assert.Len(t, denoised, 64)
	assert.Len(t, noise, 64)

	for y := range image {
		for x := range image[y] {
			assert.InDelta(t, image[y][x], denoised[y][x]+noise[y][x], 1e-9)
		}
	}
}

func TestDenoiseFacadeRejectsBadOptions(t *testing.T) {
	image := [][]float64{{1, 2}, {3, 4}}

	opts := options.NewDenoiseOptions(nil)
	opts.Levels = 3

	_, _, err := Denoise(image, opts)
	assert.ErrorIs(t, err, wavelet.ErrInvalidConfiguration)
}
