package container

import (
	"fmt"
	"image/png"
	"log/slog"

	"pixsteg/stego"
)

// Scheme selects how the message is laid out in the pixels.
type Scheme string

const (
	// SchemePixels stores three bytes per sampled pixel behind a length
	// header and a sentinel.
	SchemePixels Scheme = "pixels"
	// SchemeColumns marks one white pixel per byte, at the column equal to
	// the byte value.
	SchemeColumns Scheme = "columns"
)

type Options struct {
	Scheme       Scheme
	Shift        int
	FlattenWhite bool
	// Exact drops the padding added on embed when revealing.
	Exact       bool
	Compression png.CompressionLevel
	Overwrite   bool
}

// Hide embeds msg in the image at src and saves the result as a PNG at dst.
// Nothing is written when any step fails.
func Hide(src, dst, msg string, opts Options) error {
	logger := slog.Default().With("src", src, "dst", dst, "scheme", opts.Scheme)

	if err := checkSource(src); err != nil {
		return err
	}
	if err := checkDestination(dst, opts.Overwrite); err != nil {
		return err
	}

	r, format, err := Load(src, ForEmbed)
	if err != nil {
		return err
	}
	logger.Debug("loaded source", "format", format, "width", r.Width, "height", r.Height)

	switch opts.Scheme {
	case SchemePixels, "":
		codec := stego.Codec{FlattenWhite: opts.FlattenWhite}
		logger.Info("embedding message", "bytes", len(msg), "capacity", stego.Capacity(r.PixelCount()))
		if err = codec.Embed(r, opts.Shift, msg); err != nil {
			return fmt.Errorf("could not embed message in %q: %w", src, err)
		}
	case SchemeColumns:
		logger.Info("marking columns", "bytes", len(msg), "rows", r.Height)
		if err = stego.MarkColumns(r, msg); err != nil {
			return fmt.Errorf("could not embed message in %q: %w", src, err)
		}
	default:
		return fmt.Errorf("unsupported scheme: %s", opts.Scheme)
	}

	return Save(r, dst, opts.Compression, opts.Overwrite)
}

// Reveal extracts the message hidden in the PNG at src.
func Reveal(src string, opts Options) (string, error) {
	if err := checkSource(src); err != nil {
		return "", err
	}

	r, _, err := Load(src, ForExtract)
	if err != nil {
		return "", err
	}

	var msg string
	switch opts.Scheme {
	case SchemePixels, "":
		codec := stego.Codec{}
		if opts.Exact {
			msg, err = codec.ExtractExact(r, opts.Shift)
		} else {
			msg, err = codec.Extract(r, opts.Shift)
		}
	case SchemeColumns:
		msg, err = stego.ReadColumns(r)
	default:
		return "", fmt.Errorf("unsupported scheme: %s", opts.Scheme)
	}
	if err != nil {
		return "", fmt.Errorf("could not extract message from %q: %w", src, err)
	}
	return msg, nil
}
