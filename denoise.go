package katsnoise

import (
	"github.com/278261631/kats-noise-agument/options"
	"github.com/278261631/kats-noise-agument/util"
	"github.com/278261631/kats-noise-agument/wavelet"
)

// Denoise separates a 2-D image into a denoised estimate and the removed
// noise using multi-level wavelet thresholding. opts may be nil for the
// defaults. The input must contain only finite values.
func Denoise(image [][]float64, opts *options.DenoiseOptions) (denoised [][]float64, noise [][]float64, err error) {
	opt := options.NewDenoiseOptions(opts)

	height := int32(len(image))
	var width int32
	if height > 0 {
		width = int32(len(image[0]))
	}
	img := util.New2DMatrixWithContents(height, width, image)

	d, n, err := wavelet.Denoise(img, opt.Config(), nil)
	if err != nil {
		return nil, nil, err
	}
	return d.To2DSlice(), n.To2DSlice(), nil
}
