package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	db          *gorm.DB
	User        UserRepository
	Profile     ProfileRepository
	Internship  InternshipRepository
	Application ApplicationRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:          db,
		User:        NewUserRepo(db),
		Profile:     NewProfileRepo(db),
		Internship:  NewInternshipRepo(db),
		Application: NewApplicationRepo(db),
	}
}

// Transaction 在数据库事务内执行 fn，fn 收到绑定事务的仓储副本。
// 注册等需要跨表原子写入的场景使用。未绑定 *gorm.DB 时退化为直接执行 fn。
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// WithTx 返回绑定到事务的 Repository 副本
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}
