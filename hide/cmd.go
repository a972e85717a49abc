package hide

import (
	"context"
	"fmt"
	"image/png"
	"log/slog"
	"path/filepath"

	"pixsteg/access"
	"pixsteg/container"
	"pixsteg/prompt"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Src         string `help:"Cover image (PNG, BMP, TIFF, GIF or lossless WebP)" required:"" type:"existingfile"`
	Dst         string `help:"Destination PNG. Relative to the source folder if not absolute." required:""`
	Message     string `help:"Message to hide. Read from --message-file or standard input when empty." short:"m" xor:"message"`
	MessageFile string `help:"File holding the message to hide" type:"existingfile" xor:"message"`
	Shift       int    `help:"Value added to every stored byte" default:"${shift}"`
	MaxShift    int    `help:"Largest accepted shift" default:"${max_shift}" hidden:""`
	Scheme      string `help:"Message layout" enum:"pixels,columns" default:"pixels"`
	Flatten     bool   `help:"Rewrite pure white pixels to (254,254,254) before embedding" default:"${flatten_white}" negatable:""`
	Compression string `help:"PNG compression of the destination" enum:"default,none,speed,best" default:"${png_compression}"`
	Force       bool   `help:"Overwrite the destination if it exists" default:"false"`

	level png.CompressionLevel `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	src, err := filepath.Abs(c.Src)
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Src, err)
	}
	c.Src = src

	if !filepath.IsAbs(c.Dst) {
		c.Dst = filepath.Join(filepath.Dir(src), c.Dst)
	}

	if err = prompt.ValidateShift(c.Shift, c.MaxShift); err != nil {
		return err
	}

	if c.level, err = container.ParseCompression(c.Compression); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(ctx context.Context, gate access.Gate, input prompt.Input) error {
	if err := gate.Authorize(ctx); err != nil {
		return err
	}

	msg, err := input.Message(c.Message, c.MessageFile)
	if err != nil {
		return err
	}

	req := prompt.Request{
		Source:      c.Src,
		Destination: c.Dst,
		Message:     msg,
		Shift:       c.Shift,
	}
	if err = req.Validate(c.MaxShift); err != nil {
		return err
	}

	opts := container.Options{
		Scheme:       container.Scheme(c.Scheme),
		Shift:        req.Shift,
		FlattenWhite: c.Flatten,
		Compression:  c.level,
		Overwrite:    c.Force,
	}
	if err = container.Hide(req.Source, req.Destination, req.Message, opts); err != nil {
		return err
	}

	slog.Info("message hidden", "file", req.Destination, "bytes", len(req.Message))
	return nil
}
