package access

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
)

type CLICmd struct {
	Init struct {
		KeyFile string `help:"Key file to create" default:"secret.key" type:"path"`
		Phrase  string `help:"Access phrase sealed in the token" required:""`
	} `cmd:"" help:"Create an access key file and print the matching token"`
}

func (c *CLICmd) Run(out io.Writer) error {
	keyFile, err := filepath.Abs(c.Init.KeyFile)
	if err != nil {
		return fmt.Errorf("invalid key file path %q: %w", c.Init.KeyFile, err)
	}

	tok, err := Seal(keyFile, c.Init.Phrase)
	if err != nil {
		return err
	}

	slog.Info("created access key", "file", keyFile)
	_, err = fmt.Fprintln(out, tok)
	return err
}
