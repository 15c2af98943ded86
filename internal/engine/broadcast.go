package engine

// Broadcast is a one-time, read-only distribution of a value to every worker.
// It is handed out once before a pass starts so that per-element functions
// never re-serialize the value per task.
type Broadcast[T any] struct {
	value T
}

// NewBroadcast wraps value for read-only distribution.
func NewBroadcast[T any](value T) *Broadcast[T] {
	return &Broadcast[T]{value: value}
}

// Value returns the broadcast value. Callers must not mutate it.
func (b *Broadcast[T]) Value() T {
	return b.value
}
