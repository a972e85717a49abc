package hide

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pixsteg/access"
	"pixsteg/container"
	"pixsteg/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cover(t *testing.T) string {
	t.Helper()

	src := filepath.Join(t.TempDir(), "cover.png")
	f, err := os.Create(src)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 20, 20))))
	require.NoError(t, f.Close())
	return src
}

func newCmd(src string) *CLICmd {
	return &CLICmd{
		Src:         src,
		Dst:         "out.png",
		Shift:       3,
		MaxShift:    30,
		Scheme:      "pixels",
		Flatten:     true,
		Compression: "default",
	}
}

func TestValidate(t *testing.T) {
	src := cover(t)

	cmd := newCmd(src)
	require.NoError(t, cmd.Validate(nil))
	assert.Equal(t, filepath.Join(filepath.Dir(src), "out.png"), cmd.Dst)
	assert.Equal(t, png.DefaultCompression, cmd.level)

	cmd = newCmd(src)
	cmd.Shift = 31
	assert.Error(t, cmd.Validate(nil))

	cmd = newCmd(src)
	cmd.Compression = "max"
	assert.Error(t, cmd.Validate(nil))
}

func TestRun(t *testing.T) {
	t.Run("message from stdin", func(t *testing.T) {
		cmd := newCmd(cover(t))
		require.NoError(t, cmd.Validate(nil))

		input := prompt.Input{In: strings.NewReader("piped secret")}
		require.NoError(t, cmd.Run(context.Background(), access.Allow, input))

		msg, err := container.Reveal(cmd.Dst, container.Options{Shift: 3, Exact: true})
		require.NoError(t, err)
		assert.Equal(t, "piped secret", msg)
	})

	t.Run("message flag", func(t *testing.T) {
		cmd := newCmd(cover(t))
		cmd.Message = "flagged"
		require.NoError(t, cmd.Validate(nil))

		require.NoError(t, cmd.Run(context.Background(), access.Allow, prompt.Input{}))

		msg, err := container.Reveal(cmd.Dst, container.Options{Shift: 3})
		require.NoError(t, err)
		assert.Equal(t, "flagged  ", msg)
	})

	t.Run("denied", func(t *testing.T) {
		cmd := newCmd(cover(t))
		cmd.Message = "never written"
		require.NoError(t, cmd.Validate(nil))

		deny := access.GateFunc(func(context.Context) error { return access.ErrDenied })
		assert.ErrorIs(t, cmd.Run(context.Background(), deny, prompt.Input{}), access.ErrDenied)
		assert.NoFileExists(t, cmd.Dst)
	})
}
