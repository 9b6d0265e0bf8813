package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotLocks_SerializesSameKey(t *testing.T) {
	locks := newSlotLocks()
	var active, peak atomic.Int32

	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			unlock := locks.lock("public/assets")
			defer unlock()
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			active.Add(-1)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), peak.Load())
	assert.Empty(t, locks.locks)
}

func TestSlotLocks_IndependentKeys(t *testing.T) {
	locks := newSlotLocks()

	unlockA := locks.lock("public/assets")
	unlockB := locks.lock("tmp/cache/assets")
	assert.Len(t, locks.locks, 2)

	unlockA()
	unlockB()
	assert.Empty(t, locks.locks)
}
