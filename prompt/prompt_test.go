package prompt

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestValidate(t *testing.T) {
	ok := Request{Source: "a.png", Destination: "b.png", Message: "hi", Shift: 30}
	assert.NoError(t, ok.Validate(30))

	testCases := []struct {
		name string
		req  Request
	}{
		{name: "no source", req: Request{Destination: "b.png"}},
		{name: "no destination", req: Request{Source: "a.png"}},
		{name: "shift too large", req: Request{Source: "a.png", Destination: "b.png", Shift: 31}},
		{name: "negative shift", req: Request{Source: "a.png", Destination: "b.png", Shift: -1}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, tc.req.Validate(30))
		})
	}
}

func TestInputMessage(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		in := Input{In: strings.NewReader("ignored"), Out: &bytes.Buffer{}}
		msg, err := in.Message("direct", "also-ignored.txt")
		require.NoError(t, err)
		assert.Equal(t, "direct", msg)
	})

	t.Run("file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "msg.txt")
		require.NoError(t, os.WriteFile(file, []byte("from file\nsecond line\n"), 0o600))

		msg, err := Input{In: strings.NewReader("ignored")}.Message("", file)
		require.NoError(t, err)
		assert.Equal(t, "from file\nsecond line\n", msg)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Input{}.Message("", filepath.Join(t.TempDir(), "none.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("piped input", func(t *testing.T) {
		out := &bytes.Buffer{}
		msg, err := Input{In: strings.NewReader("piped\nmessage"), Out: out}.Message("", "")
		require.NoError(t, err)
		assert.Equal(t, "piped\nmessage", msg)
		assert.Empty(t, out.String(), "no prompt without a terminal")
	})
}
