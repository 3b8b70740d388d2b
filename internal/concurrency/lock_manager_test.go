package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLock_SameKeySameMutex(t *testing.T) {
	lm := NewLockManager()

	assert.Same(t, lm.GetLock("user-a"), lm.GetLock("user-a"))
	assert.NotSame(t, lm.GetLock("user-a"), lm.GetLock("user-b"))
}

func TestGetLock_ConcurrentFirstUse(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 50
	locks := make([]*sync.Mutex, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			locks[i] = lm.GetLock("user-a")
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, locks[0], locks[i])
	}
}

func TestGetLock_SerializesCriticalSection(t *testing.T) {
	lm := NewLockManager()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lock := lm.GetLock("user-a")
			lock.Lock()
			counter++
			lock.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, counter)
}
