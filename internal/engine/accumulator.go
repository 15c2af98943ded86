package engine

import "sync"

// StatAccumulator is a write-mostly counter keyed by bucket name. Adds are
// commutative and associative, so the final value is identical regardless of
// which worker counted which element. The authoritative value is only valid
// after the pass that drives the adds has fully completed.
type StatAccumulator struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewStatAccumulator creates an empty accumulator.
func NewStatAccumulator() *StatAccumulator {
	return &StatAccumulator{counts: make(map[string]int64)}
}

// Add increments bucket by one.
func (a *StatAccumulator) Add(bucket string) {
	a.AddN(bucket, 1)
}

// AddN increments bucket by n.
func (a *StatAccumulator) AddN(bucket string, n int64) {
	a.mu.Lock()
	a.counts[bucket] += n
	a.mu.Unlock()
}

// Merge folds another accumulator into this one.
func (a *StatAccumulator) Merge(other *StatAccumulator) {
	for bucket, n := range other.Value() {
		a.AddN(bucket, n)
	}
}

// Count returns the current count of bucket.
func (a *StatAccumulator) Count(bucket string) int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.counts[bucket]
}

// Value returns a copy of all bucket counts.
func (a *StatAccumulator) Value() map[string]int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	value := make(map[string]int64, len(a.counts))
	for bucket, n := range a.counts {
		value[bucket] = n
	}
	return value
}
