package concurrency

import (
	"sort"
	"sync"
)

// LockManager handles named locks
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns a mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockKeys acquires the locks for all keys in sorted order and returns an
// unlock function. Sorting gives every caller the same acquisition order,
// so two callers touching overlapping key sets cannot deadlock. Duplicate
// keys are collapsed before locking.
func (lm *LockManager) LockKeys(keys []string) func() {
	unique := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			unique = append(unique, k)
		}
	}
	sort.Strings(unique)

	locked := make([]*sync.Mutex, 0, len(unique))
	for _, k := range unique {
		mu := lm.GetLock(k)
		mu.Lock()
		locked = append(locked, mu)
	}

	return func() {
		// Release in reverse acquisition order.
		for i := len(locked) - 1; i >= 0; i-- {
			locked[i].Unlock()
		}
	}
}
