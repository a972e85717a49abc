package reveal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"pixsteg/access"
	"pixsteg/container"
	"pixsteg/parallel"
	"pixsteg/prompt"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Files    []string `arg:"" help:"PNG images to read" type:"existingfile"`
	Shift    int      `help:"Value subtracted from every stored byte" default:"${shift}"`
	MaxShift int      `help:"Largest accepted shift" default:"${max_shift}" hidden:""`
	Scheme   string   `help:"Message layout" enum:"pixels,columns" default:"pixels"`
	Exact    bool     `help:"Drop the padding spaces added when the message was hidden" default:"false"`
	Workers  int      `help:"Images decoded concurrently, 0 for one per CPU" default:"${workers}"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	return prompt.ValidateShift(c.Shift, c.MaxShift)
}

func (c *CLICmd) Run(ctx context.Context, gate access.Gate, out io.Writer) error {
	if err := gate.Authorize(ctx); err != nil {
		return err
	}

	opts := container.Options{
		Scheme: container.Scheme(c.Scheme),
		Shift:  c.Shift,
		Exact:  c.Exact,
	}

	messages := make([]string, len(c.Files))
	found := make([]bool, len(c.Files))
	var processedCount, errCount atomic.Uint64

	pool := parallel.Start(min(c.Workers, len(c.Files)))
	for i, file := range c.Files {
		pool.Go(func() error {
			logger := slog.Default().With("file", file)
			if err := ctx.Err(); err != nil {
				errCount.Add(1)
				return fmt.Errorf("skipped %q: %w", file, err)
			}

			msg, err := container.Reveal(file, opts)
			if err != nil {
				errCount.Add(1)
				logger.Error("could not reveal message", "error", err)
				return err
			}

			logger.Debug("message revealed", "bytes", len(msg))
			messages[i], found[i] = msg, true
			processedCount.Add(1)
			return nil
		})
	}
	err := pool.Wait()

	for i, msg := range messages {
		if !found[i] {
			continue
		}
		if len(c.Files) > 1 {
			if _, werr := fmt.Fprintf(out, "%s: ", c.Files[i]); werr != nil {
				return werr
			}
		}
		if _, werr := fmt.Fprintln(out, msg); werr != nil {
			return werr
		}
	}

	processed, errors := processedCount.Load(), errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)

	if len(c.Files) == 1 {
		return err
	}
	if errors > 0 {
		return fmt.Errorf("error revealing %d files: %w", errors, err)
	}
	return err
}
