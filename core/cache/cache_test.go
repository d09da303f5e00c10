package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRememberCallsProducerOnceWithinTTL(t *testing.T) {
	c := New()
	calls := 0

	producer := func() (any, error) {
		calls++
		return "value", nil
	}

	for i := 0; i < 5; i++ {
		got, err := c.Remember("k", time.Minute, producer)
		assert.NoError(t, err)
		assert.Equal(t, "value", got)
	}

	assert.Equal(t, 1, calls)
}

func TestRememberRecomputesAfterExpiry(t *testing.T) {
	c := New()
	calls := 0

	producer := func() (any, error) {
		calls++
		return calls, nil
	}

	got, err := c.Remember("k", 10*time.Millisecond, producer)
	assert.NoError(t, err)
	assert.Equal(t, 1, got)

	time.Sleep(20 * time.Millisecond)

	got, err = c.Remember("k", 10*time.Millisecond, producer)
	assert.NoError(t, err)
	assert.Equal(t, 2, got)
	assert.Equal(t, 2, calls)
}

func TestRememberDoesNotCacheErrors(t *testing.T) {
	c := New()
	boom := errors.New("boom")
	calls := 0

	_, err := c.Remember("k", time.Minute, func() (any, error) {
		calls++
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Has("k"))

	got, err := c.Remember("k", time.Minute, func() (any, error) {
		calls++
		return "recovered", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", got)
	assert.Equal(t, 2, calls)
}

func TestRememberCoalescesConcurrentCallers(t *testing.T) {
	c := New()
	var calls atomic.Int32

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.Remember("k", time.Minute, func() (any, error) {
				calls.Add(1)
				time.Sleep(5 * time.Millisecond)
				return "value", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "value", got)
		}()
	}
	wg.Wait()

	// Coalescing is best-effort; at least one call must have happened and
	// far fewer than one per caller.
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
	assert.Less(t, calls.Load(), int32(10))
}

func TestManualPutGetHasForget(t *testing.T) {
	c := New()

	assert.False(t, c.Has("k"))
	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Put("k", 42, time.Minute)
	assert.True(t, c.Has("k"))

	got, ok := c.Get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)

	c.Forget("k")
	assert.False(t, c.Has("k"))
}

func TestExpiredEntryBehavesAsAbsent(t *testing.T) {
	c := New()
	c.Put("k", "v", -time.Second)

	assert.False(t, c.Has("k"))
	_, ok := c.Get("k")
	assert.False(t, ok)
}
