package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. The engine keys locks by profile
// user id so that concurrent callers acting on the same profile (two browser
// tabs, a retried request) serialize around each transactional unit.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never evicted; the per-user footprint is one mutex.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
