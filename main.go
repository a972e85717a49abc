package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"pixsteg/access"
	"pixsteg/config"
	"pixsteg/hide"
	"pixsteg/prompt"
	"pixsteg/reveal"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Config   string `help:"YAML configuration file" default:"pixsteg.yaml" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)" default:"${log_level}"`

	Hide   hide.CLICmd   `cmd:"" help:"Hide a message in an image"`
	Reveal reveal.CLICmd `cmd:"" help:"Reveal messages hidden in images"`
	Access access.CLICmd `cmd:"" help:"Manage the access key"`
}

// configPath finds --config before kong parses the command line, since the
// file provides the flag defaults.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return config.DefaultPath
}

func gate(conf *config.Config) access.Gate {
	if !conf.Access.Enabled {
		return access.Allow
	}
	return access.PassphraseGate{
		KeyFile: conf.Access.KeyFile,
		Token:   conf.Access.Token,
		Phrase:  conf.Access.Phrase,
	}
}

func setupLogging(level string) error {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
	return nil
}

func main() {
	conf, err := config.LoadOptional(configPath(os.Args[1:]))
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pixsteg"),
		kong.Description("Hide text in the pixels of lossless images."),
		kong.UsageOnError(),
		kong.Vars(conf.Vars()),
	)

	if err = setupLogging(cli.LogLevel); err != nil {
		kctx.FatalIfErrorf(err)
	}
	slog.Debug("running", "command", kctx.Command(), "config", cli.Config)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = kctx.Run(
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.BindTo(gate(conf), (*access.Gate)(nil)),
		kong.BindTo(io.Writer(os.Stdout), (*io.Writer)(nil)),
		kong.Bind(prompt.Stdio()),
	)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
