// Package engine provides the small set of in-process parallel-collection
// primitives the pipeline is expressed against: map, flat-map, filter,
// for-each, group-by-key, reduce-by-key, join, left-outer-join, distinct,
// sort, take, broadcast and a commutative accumulator.
//
// Per-element functions must be pure: any element may run on any worker, in
// any order, so the only sanctioned side effects are accumulator adds and the
// final persistence calls driven through ForEach.
package engine

import "runtime"

// Pool bounds the fan-out of the parallel primitives.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker bound. A non-positive bound
// falls back to the number of CPUs.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{workers: workers}
}

func (p *Pool) Workers() int { return p.workers }
