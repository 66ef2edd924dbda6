package storage

import (
	"context"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elimpostor/elimpostor/internal/timeouts"
)

// hangingStore blocks every call until released.
type hangingStore struct {
	release chan struct{}
}

func newHangingStore() *hangingStore {
	return &hangingStore{release: make(chan struct{})}
}

func (h *hangingStore) Get(ctx context.Context, key string) (string, bool, error) {
	<-h.release
	return "", false, nil
}

func (h *hangingStore) Set(ctx context.Context, key, value string) error {
	<-h.release
	return nil
}

func (h *hangingStore) Remove(ctx context.Context, key string) error {
	<-h.release
	return nil
}

func TestBoundedPassesThrough(t *testing.T) {
	bounded := NewBounded(NewMemory(), testLogger())
	roundTrip(t, bounded)
}

func TestBoundedTimesOut(t *testing.T) {
	mock := quartz.NewMock(t)
	inner := newHangingStore()
	defer close(inner.release)
	bounded := NewBoundedWithClock(inner, testLogger(), mock)
	ctx := context.Background()

	type outcome struct {
		found bool
		err   error
	}
	results := make(chan outcome, 1)
	go func() {
		_, found, err := bounded.Get(ctx, "slow")
		results <- outcome{found, err}
	}()

	// Let the call arm its deadline, then fire it.
	time.Sleep(10 * time.Millisecond)
	mock.Advance(timeouts.Persistence).MustWait(t.Context())

	select {
	case r := <-results:
		assert.False(t, r.found)
		require.ErrorIs(t, r.err, ErrTimeout)
	case <-time.After(5 * time.Second):
		t.Fatal("bounded Get did not time out")
	}
}

func TestBoundedSetTimesOut(t *testing.T) {
	mock := quartz.NewMock(t)
	inner := newHangingStore()
	defer close(inner.release)
	bounded := NewBoundedWithClock(inner, testLogger(), mock)

	errs := make(chan error, 1)
	go func() {
		errs <- bounded.Set(context.Background(), "slow", "value")
	}()

	time.Sleep(10 * time.Millisecond)
	mock.Advance(timeouts.Persistence).MustWait(t.Context())

	select {
	case err := <-errs:
		require.ErrorIs(t, err, ErrTimeout)
	case <-time.After(5 * time.Second):
		t.Fatal("bounded Set did not time out")
	}
}
