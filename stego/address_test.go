package stego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddresses(t *testing.T) {
	t.Run("single sample", func(t *testing.T) {
		assert.Equal(t, []int{1}, Addresses(16, 1))
	})

	t.Run("evenly spaced", func(t *testing.T) {
		assert.Equal(t, []int{1, 4, 7, 10, 13}, Addresses(16, 5))
	})

	t.Run("no samples", func(t *testing.T) {
		assert.Empty(t, Addresses(16, 0))
		assert.Empty(t, Addresses(1, 3))
	})

	t.Run("deterministic and strictly increasing", func(t *testing.T) {
		for _, pixels := range []int{2, 3, 16, 17, 100, 1 << 20} {
			for _, samples := range []int{1, 2, 3, pixels / 3, pixels - 2, pixels - 1} {
				if samples <= 0 || samples > pixels-1 {
					continue
				}
				first := Addresses(pixels, samples)
				second := Addresses(pixels, samples)
				require.Equal(t, first, second)
				require.Len(t, first, samples)
				assert.Equal(t, 1, first[0])
				for i := 1; i < len(first); i++ {
					require.Greater(t, first[i], first[i-1], "pixels=%d samples=%d", pixels, samples)
				}
				assert.Less(t, first[len(first)-1], pixels)
			}
		}
	})

	t.Run("sentinel never sampled within usable pixels", func(t *testing.T) {
		for pixels := 3; pixels < 200; pixels++ {
			for samples := 1; samples <= UsablePixels(pixels); samples++ {
				seq := Addresses(pixels, samples)
				require.Less(t, seq[len(seq)-1], pixels-1, "pixels=%d samples=%d", pixels, samples)
			}
		}
	})

	t.Run("full sampling reaches last pixel", func(t *testing.T) {
		seq := Addresses(16, 15)
		assert.Equal(t, 15, seq[len(seq)-1])
	})
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, Capacity(0))
	assert.Equal(t, 0, Capacity(1))
	assert.Equal(t, 0, Capacity(2))
	assert.Equal(t, 42, Capacity(16))
	assert.Equal(t, MaxHeaderLength, Capacity(1<<30))
}
