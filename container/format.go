package container

import (
	"bytes"
	"fmt"

	"pixsteg/stego"
)

type Format string

const (
	FormatUnknown  Format = "unknown"
	FormatPNG      Format = "png"
	FormatGIF      Format = "gif"
	FormatJPEG     Format = "jpeg"
	FormatBMP      Format = "bmp"
	FormatTIFF     Format = "tiff"
	FormatWebP     Format = "webp"
	FormatWebPLoss Format = "webp-lossless"
)

// SniffLen is the number of leading bytes Sniff needs.
const SniffLen = 16

var (
	pngMagic     = []byte("\x89PNG\r\n\x1a\n")
	gifMagic     = []byte("GIF8")
	jpegMagic    = []byte{0xFF, 0xD8, 0xFF}
	bmpMagic     = []byte("BM")
	tiffLEMagic  = []byte("II*\x00")
	tiffBEMagic  = []byte("MM\x00*")
	riffMagic    = []byte("RIFF")
	webpMagic    = []byte("WEBP")
	vp8lChunkTag = []byte("VP8L")
)

// Sniff identifies the container from its leading bytes.
func Sniff(header []byte) Format {
	switch {
	case bytes.HasPrefix(header, pngMagic):
		return FormatPNG
	case bytes.HasPrefix(header, gifMagic):
		return FormatGIF
	case bytes.HasPrefix(header, jpegMagic):
		return FormatJPEG
	case bytes.HasPrefix(header, tiffLEMagic), bytes.HasPrefix(header, tiffBEMagic):
		return FormatTIFF
	case bytes.HasPrefix(header, bmpMagic):
		return FormatBMP
	case len(header) >= 16 && bytes.HasPrefix(header, riffMagic) && bytes.Equal(header[8:12], webpMagic):
		if bytes.Equal(header[12:16], vp8lChunkTag) {
			return FormatWebPLoss
		}
		return FormatWebP
	}
	return FormatUnknown
}

// Purpose selects the format policy applied by Load.
type Purpose int

const (
	// ForEmbed accepts any lossless source; the result is always saved as PNG.
	ForEmbed Purpose = iota
	// ForExtract accepts only PNG.
	ForExtract
)

func (p Purpose) String() string {
	switch p {
	case ForEmbed:
		return "embed"
	case ForExtract:
		return "extract"
	}
	return fmt.Sprintf("Purpose(%d)", int(p))
}

// Allow reports whether f may be used for p.
func (p Purpose) Allow(f Format) error {
	switch f {
	case FormatPNG:
		return nil
	case FormatBMP, FormatTIFF, FormatGIF, FormatWebPLoss:
		if p == ForEmbed {
			return nil
		}
		return &stego.UnsupportedFormatError{Format: string(f), Reason: "hidden messages are only read from PNG"}
	case FormatJPEG, FormatWebP:
		return &stego.UnsupportedFormatError{Format: string(f), Reason: "lossy compression alters channel values"}
	}
	return &stego.UnsupportedFormatError{Format: string(f)}
}
