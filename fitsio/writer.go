package fitsio

import (
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/278261631/kats-noise-agument/util"
)

// WriteImageFile writes data as a float64 primary HDU, carrying over every
// non-structural card from header. header may be nil for a minimal one.
func WriteImageFile(path string, header *Header, data *util.Matrix[float64]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteImage(f, header, data)
}

// WriteImage writes a single primary HDU. The header is copied, its
// structural cards rewritten to describe the float64 array being written,
// and any BSCALE/BZERO dropped since the samples are stored unscaled.
func WriteImage(w io.Writer, header *Header, data *util.Matrix[float64]) error {
	carried := NewHeader()
	if header != nil {
		carried.cards = append(carried.cards, header.cards...)
	}
	for _, key := range []string{"SIMPLE", "BITPIX", "NAXIS", "NAXIS1", "NAXIS2", "BSCALE", "BZERO"} {
		carried.Remove(key)
	}

	// Structural cards lead, in the order the standard mandates.
	cards := []string{
		formatCard("SIMPLE", "T", "conforms to FITS standard"),
		formatCard("BITPIX", "-64", "array data type"),
		formatCard("NAXIS", "2", "number of array dimensions"),
		formatCard("NAXIS1", strconv.Itoa(int(data.Width)), ""),
		formatCard("NAXIS2", strconv.Itoa(int(data.Height)), ""),
	}
	cards = append(cards, carried.cards...)
	endCard := "END" + strings.Repeat(" ", cardSize-3)
	cards = append(cards, endCard)

	buf := make([]byte, 0, paddedLength(len(cards)*cardSize))
	for _, card := range cards {
		buf = append(buf, card...)
	}
	for len(buf)%blockSize != 0 {
		buf = append(buf, ' ')
	}
	if _, err := w.Write(buf); err != nil {
		return err
	}

	raw := make([]byte, paddedLength(len(data.Data)*8))
	for i, v := range data.Data {
		binary.BigEndian.PutUint64(raw[i*8:], math.Float64bits(v))
	}
	_, err := w.Write(raw)
	return err
}
