package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhairyapractice/Solo-leveling/internal/domain"
	"github.com/dhairyapractice/Solo-leveling/internal/testing/leaktest"
)

type stubResetter struct {
	mu    sync.Mutex
	once  sync.Once
	calls []string
	done  chan struct{}
}

func (s *stubResetter) ResetQuests(ctx context.Context, questType string) (int64, error) {
	s.mu.Lock()
	s.calls = append(s.calls, questType)
	s.mu.Unlock()
	if s.done != nil {
		s.once.Do(func() { close(s.done) })
	}
	return 1, nil
}

func (s *stubResetter) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func TestTimeUntilNextDailyReset_Bounds(t *testing.T) {
	d := timeUntilNextDailyReset()

	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}

func TestTimeUntilNextWeeklyReset_Bounds(t *testing.T) {
	d := timeUntilNextWeeklyReset()

	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 7*24*time.Hour)

	target := time.Now().UTC().Add(d).Round(time.Second)
	assert.Equal(t, time.Monday, target.Weekday())
}

func TestResetWorker_ExecutesWhenTimerFires(t *testing.T) {
	stub := &stubResetter{done: make(chan struct{})}
	w := &ResetWorker{
		svc:       stub,
		questType: domain.QuestTypeDaily,
		period:    24 * time.Hour,
		nextReset: func() time.Duration { return 5 * time.Millisecond },
		shutdown:  make(chan struct{}),
	}

	w.Start()

	select {
	case <-stub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("reset did not execute")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	assert.Equal(t, []string{domain.QuestTypeDaily}, stub.calls[:1])
}

func TestResetWorker_ShutdownCancelsPendingTimer(t *testing.T) {
	stub := &stubResetter{}

	leaktest.CheckNoGoroutineLeak(t, func() {
		w := NewDailyResetWorker(stub)
		w.Start()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		require.NoError(t, w.Shutdown(ctx))
	})

	assert.Zero(t, stub.callCount())
}

func TestResetWorker_ShutdownIdempotent(t *testing.T) {
	w := NewWeeklyResetWorker(&stubResetter{})
	w.Start()

	ctx := context.Background()
	require.NoError(t, w.Shutdown(ctx))
	require.NoError(t, w.Shutdown(ctx))
}
