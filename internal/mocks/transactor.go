// Package mocks holds testify doubles for the repository interfaces.
package mocks

import "context"

// Transactor runs fn inline with the caller's context.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
