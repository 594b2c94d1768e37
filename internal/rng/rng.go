// Package rng isolates randomness behind a small interface so that bot moves
// and food placement can be replayed in tests.
package rng

import (
	"math/rand"
	"sync"
	"time"
)

type Source interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a goroutine-safe source. A zero seed picks a time-based one.
func New(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedSource{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // game randomness, not security
	}
}

func (that *lockedSource) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

// Sequence replays scripted values, each reduced modulo n. It wraps around
// when exhausted; an empty sequence always yields 0.
type Sequence struct {
	mu     sync.Mutex
	values []int
	pos    int
}

func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

func (that *Sequence) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.values) == 0 {
		return 0
	}

	v := that.values[that.pos%len(that.values)]
	that.pos++

	if v < 0 {
		v = -v
	}

	return v % n
}
