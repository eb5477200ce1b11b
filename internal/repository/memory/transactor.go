package memory

import (
	"context"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
)

type transactor struct{}

// NewTransactor returns a database.Transactor for the in-memory store.
// Each repository call is applied immediately and nothing is rolled back.
func NewTransactor() database.Transactor {
	return transactor{}
}

// WithinTransaction implements database.Transactor.
func (transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}
