package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool(t *testing.T) {
	for _, workers := range []int{0, 1, 4} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			pool := Start(workers)

			var sum atomic.Int64
			for i := 1; i <= 100; i++ {
				pool.Go(func() error {
					sum.Add(int64(i))
					return nil
				})
			}

			require.NoError(t, pool.Wait())
			assert.Equal(t, int64(5050), sum.Load())
		})
	}
}

func TestPool_Errors(t *testing.T) {
	pool := Start(3)
	errOdd := errors.New("odd")

	for i := range 10 {
		pool.Go(func() error {
			if i%2 == 1 {
				return fmt.Errorf("job %d: %w", i, errOdd)
			}
			return nil
		})
	}

	err := pool.Wait()
	require.Error(t, err)
	assert.ErrorIs(t, err, errOdd)

	var joined interface{ Unwrap() []error }
	require.ErrorAs(t, err, &joined)
	assert.Len(t, joined.Unwrap(), 5)

	assert.Error(t, pool.Wait(), "wait is idempotent")
}
