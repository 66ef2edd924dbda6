package storage

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/elimpostor/elimpostor/internal/timeouts"
)

// ErrTimeout marks a store call that exceeded the persistence deadline.
var ErrTimeout = errors.New("storage call timed out")

// Bounded decorates a Store with the shared persistence deadline so a
// hanging backend cannot stall the game. A timed-out Get reads as absent
// data; a timed-out Set or Remove reads as a failed write. The inner call
// keeps running to completion in its goroutine, it is just no longer
// waited on.
type Bounded struct {
	inner    Store
	clock    quartz.Clock
	deadline time.Duration
	logger   *log.Logger
}

// NewBounded wraps inner with the standard deadline and a real clock.
func NewBounded(inner Store, logger *log.Logger) *Bounded {
	return NewBoundedWithClock(inner, logger, quartz.NewReal())
}

// NewBoundedWithClock is like NewBounded with an injectable clock for
// tests.
func NewBoundedWithClock(inner Store, logger *log.Logger, clock quartz.Clock) *Bounded {
	return &Bounded{
		inner:    inner,
		clock:    clock,
		deadline: timeouts.Persistence,
		logger:   logger.WithPrefix("storage"),
	}
}

type getResult struct {
	value string
	found bool
	err   error
}

func (b *Bounded) Get(ctx context.Context, key string) (string, bool, error) {
	results := make(chan getResult, 1)
	go func() {
		value, found, err := b.inner.Get(ctx, key)
		results <- getResult{value, found, err}
	}()

	fired, stop := b.deadlineTimer()
	defer stop()

	select {
	case r := <-results:
		return r.value, r.found, r.err
	case <-fired:
		b.logger.Warn("get exceeded persistence deadline", "key", key)
		return "", false, ErrTimeout
	}
}

func (b *Bounded) Set(ctx context.Context, key, value string) error {
	errs := make(chan error, 1)
	go func() {
		errs <- b.inner.Set(ctx, key, value)
	}()

	fired, stop := b.deadlineTimer()
	defer stop()

	select {
	case err := <-errs:
		return err
	case <-fired:
		b.logger.Warn("set exceeded persistence deadline", "key", key)
		return ErrTimeout
	}
}

func (b *Bounded) Remove(ctx context.Context, key string) error {
	errs := make(chan error, 1)
	go func() {
		errs <- b.inner.Remove(ctx, key)
	}()

	fired, stop := b.deadlineTimer()
	defer stop()

	select {
	case err := <-errs:
		return err
	case <-fired:
		b.logger.Warn("remove exceeded persistence deadline", "key", key)
		return ErrTimeout
	}
}

// deadlineTimer arms the persistence deadline and returns the fired
// channel plus a stop for the winner path.
func (b *Bounded) deadlineTimer() (<-chan struct{}, func()) {
	fired := make(chan struct{})
	timer := b.clock.AfterFunc(b.deadline, func() {
		close(fired)
	})
	return fired, func() { timer.Stop() }
}
