package repository

import (
	"context"

	"gorm.io/gorm"
)

// txKey - ключ контекста для активной транзакции
type txKey struct{}

// TxRunner выполняет функцию в рамках одной транзакции БД.
// Репозитории, вызванные внутри fn, работают с этой же транзакцией
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type gormTxRunner struct {
	db *gorm.DB
}

// NewTxRunner создаёт новый экземпляр TxRunner
func NewTxRunner(db *gorm.DB) TxRunner {
	return &gormTxRunner{db: db}
}

func (r *gormTxRunner) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// dbFromContext возвращает транзакцию из контекста или базовое соединение
func dbFromContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
