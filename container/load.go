package container

import (
	"bufio"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"pixsteg/stego"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load opens the image at path, checks its container against purpose and
// converts it to a raster.
func Load(path string, purpose Purpose) (*stego.Raster, Format, error) {
	imgFile, err := os.Open(path)
	if err != nil {
		return nil, FormatUnknown, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := imgFile.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	r, format, err := Decode(imgFile, purpose)
	if err != nil {
		return nil, format, fmt.Errorf("could not load %q for %s: %w", path, purpose, err)
	}
	return r, format, nil
}

// Decode reads an image from rd, checks its container against purpose and
// converts it to a raster.
func Decode(rd io.Reader, purpose Purpose) (*stego.Raster, Format, error) {
	br := bufio.NewReader(rd)
	header, err := br.Peek(SniffLen)
	if err != nil && len(header) == 0 {
		return nil, FormatUnknown, &stego.CorruptImageError{Reason: "could not read header", Err: err}
	}

	format := Sniff(header)
	if err := purpose.Allow(format); err != nil {
		return nil, format, err
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, format, &stego.CorruptImageError{Reason: fmt.Sprintf("could not decode %s", format), Err: err}
	}

	r, err := ToRaster(img)
	if err != nil {
		return nil, format, err
	}
	return r, format, nil
}

// ToRaster copies the colour channels of img into a new raster, dropping alpha.
func ToRaster(img image.Image) (*stego.Raster, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, &stego.CorruptImageError{Reason: "image has no pixels"}
	}

	var pix []uint8
	var stride int
	switch src := img.(type) {
	case *image.NRGBA:
		pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
	case *image.RGBA:
		pix, stride = src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], src.Stride
	default:
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
		pix, stride = dst.Pix, dst.Stride
	}

	r := stego.NewRaster(b.Dx(), b.Dy())
	for y := range r.Height {
		row := pix[y*stride:]
		for x := range r.Width {
			copy(r.Pix[(y*r.Width+x)*stego.Channels:], row[x*4:x*4+stego.Channels])
		}
	}
	return r, nil
}

// FromRaster returns an opaque image with the raster's channels.
func FromRaster(r *stego.Raster) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, r.Width, r.Height))
	for i := range r.PixelCount() {
		copy(img.Pix[i*4:], r.Pix[i*stego.Channels:i*stego.Channels+stego.Channels])
		img.Pix[i*4+3] = 0xFF
	}
	return img
}
