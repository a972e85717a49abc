package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeader(t *testing.T) {
	r := NewRaster(2, 2)

	t.Run("little endian layout", func(t *testing.T) {
		require.NoError(t, WriteHeader(r, 0x030201))
		assert.Equal(t, [Channels]uint8{1, 2, 3}, r.At(0, 0))
	})

	t.Run("full range", func(t *testing.T) {
		for length := 0; length <= MaxHeaderLength; length++ {
			if err := WriteHeader(r, length); err != nil {
				t.Fatalf("write %d: %v", length, err)
			}
			if got := ReadHeader(r); got != length {
				t.Fatalf("read %d, want %d", got, length)
			}
		}
	})

	t.Run("out of range", func(t *testing.T) {
		before := append([]uint8(nil), r.Pix...)
		for _, length := range []int{-1, MaxHeaderLength + 1} {
			err := WriteHeader(r, length)
			require.ErrorIs(t, err, ErrHeaderRange)
			var rangeErr *HeaderRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, length, rangeErr.Length)
		}
		assert.Equal(t, before, r.Pix)
	})
}

func TestShift(t *testing.T) {
	v, err := Shift('A', 30)
	require.NoError(t, err)
	assert.Equal(t, byte('A'+30), v)

	back, err := Unshift(v, 30)
	require.NoError(t, err)
	assert.Equal(t, byte('A'), back)

	_, err = Shift(250, 6)
	assert.ErrorIs(t, err, ErrChannelOverflow)

	_, err = Shift(3, -4)
	assert.ErrorIs(t, err, ErrChannelOverflow)

	_, err = Unshift(3, 4)
	assert.ErrorIs(t, err, ErrChannelOverflow)
}

func TestSentinel(t *testing.T) {
	r := NewRaster(3, 2)
	assert.False(t, Verify(r))

	Stamp(r)
	assert.True(t, Verify(r))
	assert.Equal(t, [Channels]uint8{123, 123, 123}, r.At(1, 2))

	r.Set(1, 2, [Channels]uint8{123, 123, 124})
	assert.False(t, Verify(r))

	assert.False(t, Verify(NewRaster(0, 0)))
}
