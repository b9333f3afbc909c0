package txpool

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncNotifyChannelSucceedsFirstTry(t *testing.T) {
	var delivered uint64
	ch := NewFuncNotifyChannel(func(count uint64) error {
		delivered = count
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var ok bool
	ch.Notify(42, func(result bool) {
		ok = result
		wg.Done()
	})
	wg.Wait()

	assert.True(t, ok)
	assert.Equal(t, uint64(42), delivered)
}

func TestFuncNotifyChannelExhaustsRetries(t *testing.T) {
	var attempts int
	ch := NewFuncNotifyChannel(func(count uint64) error {
		attempts++
		return errors.New("transient failure")
	})

	var wg sync.WaitGroup
	wg.Add(1)
	var ok bool
	ch.Notify(1, func(result bool) {
		ok = result
		wg.Done()
	})
	wg.Wait()

	assert.False(t, ok)
	assert.Equal(t, MaxRetryNotifyTime, attempts)
}

func TestFuncNotifyChannelStopAbortsRetry(t *testing.T) {
	ch := NewFuncNotifyChannel(func(count uint64) error {
		return errors.New("always fails")
	})
	ch.Stop()

	called := false
	ch.Notify(1, func(result bool) { called = true })
	// Stop flips the flag checked at the top of retry, so done is never
	// invoked once the channel has been torn down.
	assert.False(t, called)
}
