package repository

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TransactionManager opens gorm transactions and carries them through the context
type TransactionManager struct {
	db *gorm.DB
}

var _ TransactionManagerInterface = (*TransactionManager)(nil)

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// WithinTransaction runs fn inside a transaction. Nested calls join the
// outer transaction. Any error returned by fn rolls everything back.
func (m *TransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn returns the transaction bound to ctx, or db scoped to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
