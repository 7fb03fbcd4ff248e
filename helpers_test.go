package tasknest

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// Test utilities - shared helpers for tests

func strPtr(s string) *string {
	return &s
}

func ptrTo[T any](v T) *T {
	return &v
}

// steppingClock returns a clock that moves forward by step on every call
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := current
		current = current.Add(step)
		return t
	}
}

// sequentialIDs returns T1, T2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("T%d", n)
	}
}

var errMediumDown = errors.New("medium unavailable")

// brokenMedium fails every operation
type brokenMedium struct{}

func (brokenMedium) Get(string) (string, bool, error) { return "", false, errMediumDown }
func (brokenMedium) Set(string, string) error         { return errMediumDown }
func (brokenMedium) Delete(string) error              { return errMediumDown }

// openTest opens a container on a fresh memory medium with a deterministic
// clock and ids
func openTest(opts ...Option) (*TaskNest, *MemoryMedium) {
	medium := NewMemoryMedium()
	defaults := []Option{
		WithClock(steppingClock(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC), time.Second)),
		WithIDGenerator(sequentialIDs()),
	}
	n := Open(NewStorage(medium, nil), append(defaults, opts...)...)
	return n, medium
}
