package stego

import (
	"bytes"
	"fmt"
)

// PadByte fills the message up to a multiple of Channels.
const PadByte = ' '

// Codec embeds and extracts messages in a Raster. The zero value is ready to
// use.
type Codec struct {
	// FlattenWhite rewrites pure white pixels to (254,254,254) before
	// embedding.
	FlattenWhite bool
}

// Embed hides msg in r, shifting every stored byte by shift. The raster is
// left untouched when any precondition fails.
func (c Codec) Embed(r *Raster, shift int, msg string) error {
	if err := r.validate(); err != nil {
		return err
	}

	length := len(msg)
	if length > MaxHeaderLength {
		return &HeaderRangeError{Length: length}
	}
	if pixels := r.PixelCount(); pixels < 2 || samplesFor(length) > UsablePixels(pixels) {
		return &CapacityExceededError{Length: length, Capacity: Capacity(pixels)}
	}

	body, err := shiftBody(msg, shift)
	if err != nil {
		return err
	}

	if c.FlattenWhite {
		FlattenWhite(r)
	}

	if err := WriteHeader(r, length); err != nil {
		return err
	}
	for i, idx := range Addresses(r.PixelCount(), samplesFor(length)) {
		copy(r.Pix[idx*Channels:idx*Channels+Channels], body[i*Channels:])
	}
	Stamp(r)

	return nil
}

// shiftBody pads msg with PadByte to a multiple of Channels and applies shift
// to every byte.
func shiftBody(msg string, shift int) ([]byte, error) {
	n := samplesFor(len(msg)) * Channels
	body := make([]byte, n)
	copy(body, msg)
	for i := len(msg); i < n; i++ {
		body[i] = PadByte
	}

	for i, b := range body {
		v, err := Shift(b, shift)
		if err != nil {
			return nil, fmt.Errorf("could not shift message byte %d: %w", i, err)
		}
		body[i] = v
	}
	return body, nil
}

// Extract recovers the message hidden in r. The result includes the padding
// added by Embed, so its length is always a multiple of Channels.
func (c Codec) Extract(r *Raster, shift int) (string, error) {
	body, _, err := c.extract(r, shift)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ExtractExact is Extract truncated to the length stored in the header.
func (c Codec) ExtractExact(r *Raster, shift int) (string, error) {
	body, length, err := c.extract(r, shift)
	if err != nil {
		return "", err
	}
	return string(body[:length]), nil
}

func (c Codec) extract(r *Raster, shift int) ([]byte, int, error) {
	if err := r.validate(); err != nil {
		return nil, 0, err
	}
	if !Verify(r) {
		return nil, 0, &FormatValidationError{Reason: "sentinel pixel missing"}
	}

	length := ReadHeader(r)
	samples := samplesFor(length)
	if samples > UsablePixels(r.PixelCount()) {
		return nil, 0, &FormatValidationError{
			Reason: fmt.Sprintf("header length %d exceeds image capacity %d", length, Capacity(r.PixelCount())),
		}
	}

	var buf bytes.Buffer
	buf.Grow(samples * Channels)
	for _, idx := range Addresses(r.PixelCount(), samples) {
		for _, b := range r.Pixel(idx) {
			v, err := Unshift(b, shift)
			if err != nil {
				return nil, 0, &FormatValidationError{Reason: fmt.Sprintf("pixel %d does not match shift: %v", idx, err)}
			}
			buf.WriteByte(v)
		}
	}

	return buf.Bytes(), length, nil
}

// Embed uses the zero Codec.
func Embed(r *Raster, shift int, msg string) error {
	return Codec{}.Embed(r, shift, msg)
}

// Extract uses the zero Codec.
func Extract(r *Raster, shift int) (string, error) {
	return Codec{}.Extract(r, shift)
}

// FlattenWhite rewrites every (255,255,255) pixel to (254,254,254) and
// returns how many pixels changed.
func FlattenWhite(r *Raster) int {
	var n int
	for i := 0; i+Channels <= len(r.Pix); i += Channels {
		if r.Pix[i] == 0xFF && r.Pix[i+1] == 0xFF && r.Pix[i+2] == 0xFF {
			r.Pix[i], r.Pix[i+1], r.Pix[i+2] = 0xFE, 0xFE, 0xFE
			n++
		}
	}
	return n
}
