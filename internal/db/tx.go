package db

import (
	"context"

	"gorm.io/gorm"
)

// Transactor 为跨仓储的写操作提供统一的事务边界。
type Transactor struct {
	db *gorm.DB
}

func NewTransactor(gdb *gorm.DB) *Transactor {
	return &Transactor{db: gdb}
}

// WithinTx 在单个数据库事务中执行 fn；fn 返回错误时整体回滚。
// fn 内部只能使用传入的 tx，SQLite 单连接下混用外部连接会死锁。
func (t *Transactor) WithinTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return t.db.WithContext(ctx).Transaction(fn)
}
