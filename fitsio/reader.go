package fitsio

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/278261631/kats-noise-agument/util"
)

// Image is one primary HDU: the verbatim header plus the data array scaled
// to physical float64 values. Data row 0 is the first row in file order.
type Image struct {
	Header *Header
	Data   *util.Matrix[float64]
}

// ReadImageFile reads the primary HDU of a FITS file.
func ReadImageFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadImage(f)
}

// ReadImage reads a primary HDU from r. Extension HDUs after the primary
// data are ignored.
func ReadImage(r io.Reader) (*Image, error) {
	header, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	bitpix, err := header.GetInt("BITPIX")
	if err != nil {
		return nil, err
	}
	naxis, err := header.GetInt("NAXIS")
	if err != nil {
		return nil, err
	}
	if naxis != 2 {
		return nil, fmt.Errorf("%w: need a 2-D image, NAXIS=%d", ErrMalformedHeader, naxis)
	}
	width, err := header.GetInt("NAXIS1")
	if err != nil {
		return nil, err
	}
	height, err := header.GetInt("NAXIS2")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: bad dimensions %dx%d", ErrMalformedHeader, height, width)
	}
	bscale, err := header.GetFloat("BSCALE", 1)
	if err != nil {
		return nil, err
	}
	bzero, err := header.GetFloat("BZERO", 0)
	if err != nil {
		return nil, err
	}

	sampleSize := bitpix / 8
	if sampleSize < 0 {
		sampleSize = -sampleSize
	}
	dataLen := height * width * sampleSize
	raw := make([]byte, dataLen)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTruncatedData, err)
	}

	data := util.New2DMatrix[float64](int32(height), int32(width))
	if err := decodeSamples(raw, bitpix, data.Data); err != nil {
		return nil, err
	}
	if bscale != 1 || bzero != 0 {
		for i, v := range data.Data {
			data.Data[i] = v*bscale + bzero
		}
	}
	return &Image{Header: header, Data: data}, nil
}

func readHeader(r io.Reader) (*Header, error) {
	header := NewHeader()
	block := make([]byte, blockSize)
	for {
		if _, err := io.ReadFull(r, block); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
		}
		for off := 0; off < blockSize; off += cardSize {
			card := string(block[off : off+cardSize])
			if keyOf(card) == "END" {
				return header, nil
			}
			header.appendRaw(card)
		}
	}
}

func decodeSamples(raw []byte, bitpix int, out []float64) error {
	switch bitpix {
	case 8:
		for i := range out {
			out[i] = float64(raw[i])
		}
	case 16:
		for i := range out {
			out[i] = float64(int16(binary.BigEndian.Uint16(raw[i*2:])))
		}
	case 32:
		for i := range out {
			out[i] = float64(int32(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case 64:
		for i := range out {
			out[i] = float64(int64(binary.BigEndian.Uint64(raw[i*8:])))
		}
	case -32:
		for i := range out {
			out[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(raw[i*4:])))
		}
	case -64:
		for i := range out {
			out[i] = math.Float64frombits(binary.BigEndian.Uint64(raw[i*8:]))
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedBitpix, bitpix)
	}
	return nil
}

func paddedLength(n int) int {
	blocks := (n + blockSize - 1) / blockSize
	return blocks * blockSize
}

// ReplaceNonFinite substitutes the finite median for every NaN or infinite
// sample in place and reports how many were replaced. The denoiser requires
// a fully finite array.
func ReplaceNonFinite(data *util.Matrix[float64]) (int, float64) {
	median := util.MedianIgnoringNaNs(data.Data)
	count := 0
	for i, v := range data.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			data.Data[i] = median
			count++
		}
	}
	return count, median
}
