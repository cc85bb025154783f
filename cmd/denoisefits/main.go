package main

import (
	"fmt"
	"os"

	"github.com/278261631/kats-noise-agument/core"
	"github.com/278261631/kats-noise-agument/options"
	"github.com/278261631/kats-noise-agument/wavelet"
	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	outputFile      string
	noiseFile       string
	waveletName     string
	sigma           float64
	modeName        string
	methodName      string
	levels          int
	thresholdFactor float64
	presetName      string
	profileCPU      bool
	verbose         bool
)

var rootCmd = &cobra.Command{
	Use:   "denoisefits <input.fits>",
	Short: "Separate a FITS image into a denoised frame and a noise frame",
	Long: `denoisefits removes small sharp noise points from astronomical FITS
images with multi-level wavelet thresholding, writing the denoised frame and
optionally the extracted noise, both with the original header preserved.`,
	Args: cobra.ExactArgs(1),
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if profileCPU {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
		defer p.Stop()
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	denoiser, err := core.NewFITSDenoiser(
		core.WithInputFilename(args[0]),
		core.WithOutputFilename(outputFile),
		core.WithNoiseFilename(noiseFile),
		core.WithOptions(opts),
	)
	if err != nil {
		return err
	}
	if _, err := denoiser.Process(); err != nil {
		return err
	}
	fmt.Println("processing complete")
	return nil
}

// buildOptions starts from the preset (or defaults) and layers any
// explicitly set flags on top.
func buildOptions() (*options.DenoiseOptions, error) {
	opts, err := options.Preset(presetName)
	if err != nil {
		return nil, err
	}

	flags := rootCmd.Flags()
	if flags.Changed("wavelet") {
		if opts.Basis, err = wavelet.ParseBasis(waveletName); err != nil {
			return nil, err
		}
	}
	if flags.Changed("mode") {
		if opts.Mode, err = wavelet.ParseMode(modeName); err != nil {
			return nil, err
		}
	}
	if flags.Changed("method") {
		if opts.Method, err = wavelet.ParseMethod(methodName); err != nil {
			return nil, err
		}
	}
	if flags.Changed("levels") {
		opts.Levels = levels
	}
	if flags.Changed("threshold-factor") {
		opts.ThresholdFactor = thresholdFactor
	}
	if flags.Changed("sigma") {
		opts.Sigma = sigma
	}
	return opts, nil
}

func main() {
	rootCmd.RunE = run
	flags := rootCmd.Flags()
	flags.StringVarP(&outputFile, "output", "o", "denoised_output.fits", "output denoised FITS file")
	flags.StringVarP(&noiseFile, "noise", "n", "noise_output.fits", "output noise FITS file")
	flags.StringVarP(&waveletName, "wavelet", "w", "bior4.4", "wavelet basis (haar, db2, db4, coif1, bior2.2, bior4.4)")
	flags.Float64VarP(&sigma, "sigma", "s", 0, "noise standard deviation (estimated when omitted)")
	flags.StringVarP(&modeName, "mode", "m", "soft", "threshold mode (soft, hard)")
	flags.StringVar(&methodName, "method", "adaptive", "threshold method (adaptive, bayes, sure)")
	flags.IntVarP(&levels, "levels", "l", 6, "decomposition levels")
	flags.Float64VarP(&thresholdFactor, "threshold-factor", "t", 0.1, "threshold factor (smaller is more sensitive)")
	flags.StringVar(&presetName, "preset", "default", "tuning preset (default, sharp, ultrasharp)")
	flags.BoolVar(&profileCPU, "profile", false, "write a CPU profile to the current directory")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log per-subband thresholds")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
