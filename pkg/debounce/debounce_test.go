package debounce

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer_OnlyLatestFires(t *testing.T) {
	tm := New(30 * time.Millisecond)

	var calls, last int32
	for i := int32(1); i <= 5; i++ {
		i := i
		tm.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			atomic.StoreInt32(&last, i)
		})
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(5), atomic.LoadInt32(&last))
	assert.False(t, tm.Stop(), "fired call is not pending")

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestTimer_Stop(t *testing.T) {
	tm := New(20 * time.Millisecond)

	var calls int32
	tm.Trigger(func() { atomic.AddInt32(&calls, 1) })
	assert.True(t, tm.Stop())
	assert.False(t, tm.Stop())

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, atomic.LoadInt32(&calls))
}
