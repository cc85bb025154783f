package core

import (
	"errors"
	"fmt"

	"github.com/278261631/kats-noise-agument/fitsio"
	"github.com/278261631/kats-noise-agument/options"
	"github.com/278261631/kats-noise-agument/util"
	"github.com/278261631/kats-noise-agument/wavelet"
	log "github.com/sirupsen/logrus"
)

type FITSDenoiserOption func(d *FITSDenoiser) error

func WithInputFilename(fn string) FITSDenoiserOption {
	return func(d *FITSDenoiser) error {
		d.inputFilename = fn
		return nil
	}
}

func WithOutputFilename(fn string) FITSDenoiserOption {
	return func(d *FITSDenoiser) error {
		d.outputFilename = fn
		return nil
	}
}

// WithNoiseFilename enables writing the extracted noise alongside the
// denoised frame.
func WithNoiseFilename(fn string) FITSDenoiserOption {
	return func(d *FITSDenoiser) error {
		d.noiseFilename = fn
		return nil
	}
}

func WithOptions(opts *options.DenoiseOptions) FITSDenoiserOption {
	return func(d *FITSDenoiser) error {
		d.options = opts
		return nil
	}
}

// FITSDenoiser runs the full file-to-file pipeline: read the primary HDU,
// replace non-finite samples, denoise, and write the results with the
// original header carried through verbatim.
type FITSDenoiser struct {
	inputFilename  string
	outputFilename string
	noiseFilename  string
	options        *options.DenoiseOptions
}

func NewFITSDenoiser(opts ...FITSDenoiserOption) (*FITSDenoiser, error) {
	d := &FITSDenoiser{}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	if d.inputFilename == "" {
		return nil, errors.New("input filename required")
	}
	if d.outputFilename == "" {
		return nil, errors.New("output filename required")
	}
	if d.options == nil {
		d.options = options.NewDenoiseOptions(nil)
	}
	return d, nil
}

// Result reports what Process produced, for callers that want the arrays
// as well as the files.
type Result struct {
	Denoised *util.Matrix[float64]
	Noise    *util.Matrix[float64]
}

func (d *FITSDenoiser) Process() (*Result, error) {
	log.Infof("reading FITS file: %s", d.inputFilename)
	img, err := fitsio.ReadImageFile(d.inputFilename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", d.inputFilename, err)
	}

	lo := util.Min(img.Data.Data...)
	hi := util.Max(img.Data.Data...)
	log.Infof("image size: %dx%d, data range: [%.2f, %.2f]", img.Data.Height, img.Data.Width, lo, hi)

	if replaced, median := fitsio.ReplaceNonFinite(img.Data); replaced > 0 {
		log.Infof("replaced %d non-finite values with median %.4f", replaced, median)
	}

	cfg := d.options.Config()
	log.Infof("denoising with %d-level %v decomposition, method=%v, mode=%v",
		cfg.Levels, cfg.Basis, cfg.Method, cfg.Mode)

	denoised, noise, err := wavelet.Denoise(img.Data, cfg, logObserver{})
	if err != nil {
		return nil, err
	}

	log.Infof("saving denoised image to: %s", d.outputFilename)
	if err := fitsio.WriteImageFile(d.outputFilename, img.Header, denoised); err != nil {
		return nil, fmt.Errorf("writing %s: %w", d.outputFilename, err)
	}
	if d.noiseFilename != "" {
		log.Infof("saving noise image to: %s", d.noiseFilename)
		if err := fitsio.WriteImageFile(d.noiseFilename, img.Header, noise); err != nil {
			return nil, fmt.Errorf("writing %s: %w", d.noiseFilename, err)
		}
	}

	logStats("original", img.Data)
	logStats("denoised", denoised)
	logStats("noise", noise)
	return &Result{Denoised: denoised, Noise: noise}, nil
}

func logStats(name string, m *util.Matrix[float64]) {
	mean, stddev := util.MeanStdDev(m.Data)
	log.Infof("%s image - mean: %.4f, stddev: %.4f", name, mean, stddev)
}

// logObserver forwards the engine's diagnostics to logrus, mirroring the
// per-level threshold printout of the pipeline this replaced.
type logObserver struct{}

func (logObserver) EstimatedSigma(sigma float64) {
	log.Infof("estimated noise sigma: %.4f", sigma)
}

func (logObserver) SubbandThreshold(level int, orientation wavelet.Orientation, threshold float64) {
	log.Debugf("level %d %v threshold: %.4f", level, orientation, threshold)
}
