package cache

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSingular(t *testing.T) {
	t.Run("GetMissing", func(t *testing.T) {
		c := NewSingular[int]("missing")
		var v int
		assert.ErrorIs(t, c.Get(&v), ErrNotFound)
	})

	t.Run("SetGetDelete", func(t *testing.T) {
		c := NewSingular[string]("value")
		assert.NoError(t, c.Set("hello", time.Minute))

		var v string
		assert.NoError(t, c.Get(&v))
		assert.Equal(t, "hello", v)

		assert.NoError(t, c.Delete())
		assert.ErrorIs(t, c.Get(&v), ErrNotFound)
	})

	t.Run("MutexGetSetComputesOnce", func(t *testing.T) {
		c := NewSingular[int]("computed")
		var calls int32

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				var v int
				err := c.MutexGetSet(&v, func() (int, error) {
					atomic.AddInt32(&calls, 1)
					return 42, nil
				}, time.Minute)
				assert.NoError(t, err)
				assert.Equal(t, 42, v)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "valueFunc should be dispatched exactly once")
	})
}
