// Package random provides the randomness primitives for role and word
// assignment: a uniform integer source backed by an ordered chain of
// entropy providers, a copying Fisher-Yates shuffle, and unique index
// selection without replacement.
package random

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	rand "math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/elimpostor/elimpostor/internal/timeouts"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// Source produces uniformly distributed integers in [0, max). It never
// fails: implementations degrade to a weaker generator rather than error,
// so a game can always start.
type Source interface {
	Next(max int) int
}

var errEntropyTimeout = errors.New("entropy read timed out")

// ChainSource tries a cryptographic provider first and falls back to a
// seeded pseudo-random generator when the secure read errors or exceeds
// its deadline. Fairness of assignment wants crypto-quality draws, but
// availability wins over purity here.
type ChainSource struct {
	reader   io.Reader
	clock    quartz.Clock
	deadline time.Duration
	fallback *rand.Rand
	logger   *log.Logger
}

// New creates a ChainSource reading from crypto/rand with the standard
// entropy deadline.
func New(logger *log.Logger) *ChainSource {
	return NewWithClock(logger, quartz.NewReal())
}

// NewWithClock is like New but with an injectable clock for tests.
func NewWithClock(logger *log.Logger, clock quartz.Clock) *ChainSource {
	return &ChainSource{
		reader:   cryptoReader{},
		clock:    clock,
		deadline: timeouts.Entropy,
		fallback: newPCG(time.Now().UnixNano()),
		logger:   logger.WithPrefix("random"),
	}
}

// Next returns a uniform integer in [0, max). The draw consumes 4 bytes of
// entropy interpreted as an unsigned 32-bit little-endian integer reduced
// modulo max. The modulo introduces a small bias for max not a power of
// two, which is acceptable for game fairness but not for key material.
func (s *ChainSource) Next(max int) int {
	if max <= 1 {
		return 0
	}
	n, err := s.secureDraw(max)
	if err != nil {
		s.logger.Debug("secure entropy unavailable, using fallback generator", "error", err)
		return s.fallback.IntN(max)
	}
	return n
}

// secureDraw races one 4-byte entropy read against the deadline. The read
// goroutine writes to a buffered channel so a late result is dropped
// rather than leaking a blocked goroutine.
func (s *ChainSource) secureDraw(max int) (int, error) {
	type result struct {
		value uint32
		err   error
	}
	results := make(chan result, 1)
	go func() {
		var b [4]byte
		_, err := io.ReadFull(s.reader, b[:])
		results <- result{binary.LittleEndian.Uint32(b[:]), err}
	}()

	timedOut := make(chan struct{})
	timer := s.clock.AfterFunc(s.deadline, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case r := <-results:
		if r.err != nil {
			return 0, r.err
		}
		return int(r.value % uint32(max)), nil
	case <-timedOut:
		return 0, errEntropyTimeout
	}
}

// cryptoReader defers to crypto/rand at read time so the zero value of
// ChainSource tests can swap the reader without touching globals.
type cryptoReader struct{}

func (cryptoReader) Read(p []byte) (int, error) {
	return cryptorand.Read(p)
}

// Seeded returns a deterministic Source for tests and simulations. Given
// the same seed it produces the same sequence of draws.
func Seeded(seed int64) Source {
	return &seededSource{rng: newPCG(seed)}
}

type seededSource struct {
	rng *rand.Rand
}

func (s *seededSource) Next(max int) int {
	if max <= 1 {
		return 0
	}
	return s.rng.IntN(max)
}

// newPCG derives the two 64-bit seeds rand/v2 wants from a single int64 so
// all call sites get reproducible sequences.
func newPCG(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
