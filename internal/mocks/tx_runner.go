package mocks

import (
	"context"

	"github.com/sinalize/sinalize-api/internal/store"
)

// MockTxRunner implements store.TxRunner by invoking the function with a nil
// transaction. The in-memory store mocks ignore the transaction handle, so
// this preserves the call sequence without a database.
type MockTxRunner struct {
	// RunFn allows test cases to mock the transaction behavior, e.g. to
	// force a commit failure.
	RunFn func(ctx context.Context, fn store.TxFn) error
}

var _ store.TxRunner = (*MockTxRunner)(nil)

// RunInTransaction implements store.TxRunner.
func (m *MockTxRunner) RunInTransaction(ctx context.Context, fn store.TxFn) error {
	if m.RunFn != nil {
		return m.RunFn(ctx, fn)
	}
	return fn(ctx, nil)
}
