package stego

import "fmt"

// Channels is the number of payload bytes stored in one pixel.
const Channels = 3

// Raster is a row-major grid of 3-channel pixels. Pix holds the channel bytes;
// the pixel at linear index i starts at Pix[i*Channels].
type Raster struct {
	Width  int
	Height int
	Pix    []uint8
}

func NewRaster(width, height int) *Raster {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*Channels),
	}
}

// PixelCount is H*W.
func (r *Raster) PixelCount() int {
	return r.Width * r.Height
}

// Coords converts a linear pixel index to (row, col).
func (r *Raster) Coords(idx int) (row, col int) {
	return idx / r.Width, idx % r.Width
}

// Pixel returns the channel triple at linear index idx.
func (r *Raster) Pixel(idx int) [Channels]uint8 {
	off := idx * Channels
	return [Channels]uint8{r.Pix[off], r.Pix[off+1], r.Pix[off+2]}
}

func (r *Raster) SetPixel(idx int, p [Channels]uint8) {
	copy(r.Pix[idx*Channels:], p[:])
}

// At returns the pixel at (row, col).
func (r *Raster) At(row, col int) [Channels]uint8 {
	return r.Pixel(row*r.Width + col)
}

func (r *Raster) Set(row, col int, p [Channels]uint8) {
	r.SetPixel(row*r.Width+col, p)
}

func (r *Raster) validate() error {
	if r == nil {
		return &CorruptImageError{Reason: "no pixel data"}
	}
	if r.Width <= 0 || r.Height <= 0 {
		return &CorruptImageError{Reason: fmt.Sprintf("invalid dimensions %dx%d", r.Width, r.Height)}
	}
	if want := r.PixelCount() * Channels; len(r.Pix) != want {
		return &CorruptImageError{Reason: fmt.Sprintf("pixel buffer holds %d bytes, want %d", len(r.Pix), want)}
	}
	return nil
}
