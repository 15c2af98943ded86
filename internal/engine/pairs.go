package engine

import "sort"

// Pair is a keyed element of a pair collection.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Joined holds one matched element of an inner join.
type Joined[A, B any] struct {
	Left  A
	Right B
}

// LeftJoined holds one element of a left outer join. RightOk reports whether
// a join partner existed; when false, Right is the zero value.
type LeftJoined[A, B any] struct {
	Left    A
	Right   B
	RightOk bool
}

// GroupByKey groups values by key. Group order follows the first occurrence
// of each key and values keep their input order, so re-passes over grouped
// data see a stable, materialized order.
func GroupByKey[K comparable, V any](pairs []Pair[K, V]) []Pair[K, []V] {
	index := make(map[K]int)
	groups := make([]Pair[K, []V], 0)
	for _, p := range pairs {
		i, seen := index[p.Key]
		if !seen {
			index[p.Key] = len(groups)
			groups = append(groups, Pair[K, []V]{Key: p.Key})
			i = len(groups) - 1
		}
		groups[i].Value = append(groups[i].Value, p.Value)
	}
	return groups
}

// ReduceByKey folds all values of each key with reduce. reduce must be
// commutative and associative. Key order follows first occurrence.
func ReduceByKey[K comparable, V any](pairs []Pair[K, V], reduce func(V, V) V) []Pair[K, V] {
	index := make(map[K]int)
	reduced := make([]Pair[K, V], 0)
	for _, p := range pairs {
		i, seen := index[p.Key]
		if !seen {
			index[p.Key] = len(reduced)
			reduced = append(reduced, p)
			continue
		}
		reduced[i].Value = reduce(reduced[i].Value, p.Value)
	}
	return reduced
}

// CountByKey counts the elements per key. Key order follows first occurrence.
func CountByKey[K comparable, V any](pairs []Pair[K, V]) []Pair[K, int64] {
	counts := make([]Pair[K, int64], 0, len(pairs))
	index := make(map[K]int)
	for _, p := range pairs {
		i, seen := index[p.Key]
		if !seen {
			index[p.Key] = len(counts)
			counts = append(counts, Pair[K, int64]{Key: p.Key})
			i = len(counts) - 1
		}
		counts[i].Value++
	}
	return counts
}

// Join inner-joins two pair collections, emitting one element per matched
// (left, right) value combination, in left input order.
func Join[K comparable, A, B any](left []Pair[K, A], right []Pair[K, B]) []Pair[K, Joined[A, B]] {
	byKey := make(map[K][]B)
	for _, p := range right {
		byKey[p.Key] = append(byKey[p.Key], p.Value)
	}
	joined := make([]Pair[K, Joined[A, B]], 0, len(left))
	for _, l := range left {
		for _, r := range byKey[l.Key] {
			joined = append(joined, Pair[K, Joined[A, B]]{
				Key:   l.Key,
				Value: Joined[A, B]{Left: l.Value, Right: r},
			})
		}
	}
	return joined
}

// LeftOuterJoin joins two pair collections keeping every left element. A left
// element without a partner is emitted once with RightOk=false.
func LeftOuterJoin[K comparable, A, B any](left []Pair[K, A], right []Pair[K, B]) []Pair[K, LeftJoined[A, B]] {
	byKey := make(map[K][]B)
	for _, p := range right {
		byKey[p.Key] = append(byKey[p.Key], p.Value)
	}
	joined := make([]Pair[K, LeftJoined[A, B]], 0, len(left))
	for _, l := range left {
		partners, ok := byKey[l.Key]
		if !ok {
			joined = append(joined, Pair[K, LeftJoined[A, B]]{
				Key:   l.Key,
				Value: LeftJoined[A, B]{Left: l.Value},
			})
			continue
		}
		for _, r := range partners {
			joined = append(joined, Pair[K, LeftJoined[A, B]]{
				Key:   l.Key,
				Value: LeftJoined[A, B]{Left: l.Value, Right: r, RightOk: true},
			})
		}
	}
	return joined
}

// Distinct removes duplicates, keeping the first occurrence of each element.
func Distinct[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// SortBy returns a copy of in sorted by less. The sort is stable, so
// fully-tied elements keep their relative input order.
func SortBy[T any](in []T, less func(a, b T) bool) []T {
	out := make([]T, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// Take returns the first n elements, or all of them when fewer exist.
func Take[T any](in []T, n int) []T {
	if n > len(in) {
		n = len(in)
	}
	return in[:n]
}
