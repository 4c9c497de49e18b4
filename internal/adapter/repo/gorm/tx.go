package gormrepo

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

func withTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// getDBFromCtx returns the transaction bound to ctx, or base outside one.
func getDBFromCtx(ctx context.Context, base *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return base
}

type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return TxManager{db: db}
}

// RunInTx joins an enclosing transaction as a savepoint instead of opening
// a second connection.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDBFromCtx(ctx, t.db).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(withTx(ctx, tx))
	})
}
