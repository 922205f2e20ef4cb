package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock("user:1")
	b := lm.GetLock("user:1")
	c := lm.GetLock("user:2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestLockKeys_MutualExclusion(t *testing.T) {
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := lm.LockKeys([]string{"a", "b"})
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}

// Overlapping key sets locked in opposite textual order must not deadlock:
// LockKeys sorts before acquiring.
func TestLockKeys_NoDeadlockOnOverlap(t *testing.T) {
	lm := NewLockManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			unlock := lm.LockKeys([]string{"x", "y"})
			defer unlock()
		}()
		go func() {
			defer wg.Done()
			unlock := lm.LockKeys([]string{"y", "x"})
			defer unlock()
		}()
	}
	wg.Wait()
}

func TestLockKeys_DuplicateKeys(t *testing.T) {
	lm := NewLockManager()

	// Duplicate keys must collapse, otherwise this would self-deadlock.
	unlock := lm.LockKeys([]string{"k", "k", "k"})
	unlock()
}
