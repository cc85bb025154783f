package util

import (
	"golang.org/x/exp/constraints"
)

// Make 1D slice appear as 2D slice and helper functions.
// Generic so int-valued FITS data and float coefficients share one type.

type Matrix[T constraints.Float] struct {
	Width  int32
	Height int32
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Float](height int32, width int32) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

func New2DMatrixWithContents[T constraints.Float](height int32, width int32, initialData [][]T) *Matrix[T] {
	matrix := New2DMatrix[T](height, width)
	for h := int32(0); h < height; h++ {
		copy(matrix.Data[h*width:(h+1)*width], initialData[h])
	}
	return matrix
}

// Note y is first param...  matching the (row, col) convention throughout.
func (s *Matrix[T]) Get(y int32, x int32) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int32, x int32, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) GetRow(y int32) []T {
	return s.Data[y*s.Width : (y+1)*s.Width]
}

func (s *Matrix[T]) SetRow(y int32, data []T) {
	copy(s.Data[y*s.Width:(y+1)*s.Width], data)
}

// GetColumn copies column x into dst, which must have length Height.
func (s *Matrix[T]) GetColumn(x int32, dst []T) {
	for y := int32(0); y < s.Height; y++ {
		dst[y] = s.Data[y*s.Width+x]
	}
}

func (s *Matrix[T]) SetColumn(x int32, data []T) {
	for y := int32(0); y < s.Height; y++ {
		s.Data[y*s.Width+x] = data[y]
	}
}

func (s *Matrix[T]) Fill(value T) {
	for i := range s.Data {
		s.Data[i] = value
	}
}

// Crop returns a new matrix holding the top-left height x width region.
func (s *Matrix[T]) Crop(height int32, width int32) *Matrix[T] {
	out := New2DMatrix[T](height, width)
	for y := int32(0); y < height; y++ {
		copy(out.GetRow(y), s.GetRow(y)[:width])
	}
	return out
}

func (s *Matrix[T]) Clone() *Matrix[T] {
	out := New2DMatrix[T](s.Height, s.Width)
	copy(out.Data, s.Data)
	return out
}

// To2DSlice expands the flat data back out into a row-per-slice form.
func (s *Matrix[T]) To2DSlice() [][]T {
	out := make([][]T, s.Height)
	for y := int32(0); y < s.Height; y++ {
		row := make([]T, s.Width)
		copy(row, s.GetRow(y))
		out[y] = row
	}
	return out
}
