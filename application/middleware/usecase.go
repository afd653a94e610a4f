// Package middleware contains use-case decorators. A decorator wraps a
// UseCase and returns another UseCase with the same signature, so
// decorators compose in any order.
package middleware

import "context"

// UseCase is the uniform shape of every application operation
type UseCase[Q any, R any] interface {
	Execute(ctx context.Context, query Q) (R, error)
}

// UseCaseFunc adapts a function to the UseCase interface
type UseCaseFunc[Q any, R any] func(ctx context.Context, query Q) (R, error)

// Execute implements UseCase
func (f UseCaseFunc[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	return f(ctx, query)
}
