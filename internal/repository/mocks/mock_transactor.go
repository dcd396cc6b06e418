package mocks

import "context"

// Transactor runs fn inline, without a real transaction.
// Calls counts how many times WithinTx was entered.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}
