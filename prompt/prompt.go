// Package prompt collects the parameters of a hide or reveal operation.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Request is a fully resolved hide operation.
type Request struct {
	Source      string
	Destination string
	Message     string
	Shift       int
}

func (r Request) Validate(maxShift int) error {
	if r.Source == "" {
		return errors.New("no source image given")
	}
	if r.Destination == "" {
		return errors.New("no destination image given")
	}
	return ValidateShift(r.Shift, maxShift)
}

// ValidateShift bounds shift to 0..maxShift.
func ValidateShift(shift, maxShift int) error {
	if shift < 0 || shift > maxShift {
		return fmt.Errorf("shift %d outside 0..%d", shift, maxShift)
	}
	return nil
}

// Input resolves the message text from, in order: an explicit value, a file,
// or the input stream. An interactive terminal gets a prompt and a single
// line is read; otherwise the whole stream is the message.
type Input struct {
	In  io.Reader
	Out io.Writer
}

func Stdio() Input {
	return Input{In: os.Stdin, Out: os.Stderr}
}

func (p Input) Message(value, file string) (string, error) {
	if value != "" {
		return value, nil
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("could not read message file %q: %w", file, err)
		}
		return string(data), nil
	}

	if p.interactive() {
		if _, err := fmt.Fprint(p.Out, "Message to hide: "); err != nil {
			return "", err
		}
		line, err := bufio.NewReader(p.In).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("could not read message: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	data, err := io.ReadAll(p.In)
	if err != nil {
		return "", fmt.Errorf("could not read message: %w", err)
	}
	return string(data), nil
}

func (p Input) interactive() bool {
	f, ok := p.In.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
