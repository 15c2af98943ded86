package engine

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies f to every element in parallel, preserving input order in the
// output. The first error cancels the remaining work.
func Map[T, U any](ctx context.Context, pool *Pool, in []T, f func(context.Context, T) (U, error)) ([]U, error) {
	out := make([]U, len(in))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(pool.Workers())
	for i := range in {
		group.Go(func() error {
			mapped, err := f(ctx, in[i])
			if err != nil {
				return err
			}
			out[i] = mapped
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// FlatMap applies f to every element in parallel and concatenates the results
// in input order.
func FlatMap[T, U any](ctx context.Context, pool *Pool, in []T, f func(context.Context, T) ([]U, error)) ([]U, error) {
	parts, err := Map(ctx, pool, in, f)
	if err != nil {
		return nil, err
	}
	total := 0
	for _, part := range parts {
		total += len(part)
	}
	out := make([]U, 0, total)
	for _, part := range parts {
		out = append(out, part...)
	}
	return out, nil
}

// Filter evaluates pred on every element in parallel and keeps, in input
// order, the elements for which it returned true.
func Filter[T any](ctx context.Context, pool *Pool, in []T, pred func(context.Context, T) (bool, error)) ([]T, error) {
	keep := make([]bool, len(in))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(pool.Workers())
	for i := range in {
		group.Go(func() error {
			ok, err := pred(ctx, in[i])
			if err != nil {
				return err
			}
			keep[i] = ok
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(in))
	for i, ok := range keep {
		if ok {
			out = append(out, in[i])
		}
	}
	return out, nil
}

// ForEach applies f to every element in parallel. It is the materializing
// action used for persistence passes.
func ForEach[T any](ctx context.Context, pool *Pool, in []T, f func(context.Context, T) error) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(pool.Workers())
	for i := range in {
		group.Go(func() error {
			return f(ctx, in[i])
		})
	}
	return group.Wait()
}
