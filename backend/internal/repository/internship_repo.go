package repository

import (
	"context"

	"gorm.io/gorm"

	"intern-portal/backend/internal/model"
)

// InternshipListFilters 岗位列表过滤条件，所有条件可叠加
type InternshipListFilters struct {
	ActiveOnly bool
	PosterID   string // 非空时仅返回该发布者的岗位
	Q          string // title / description / skills_required 子串匹配（不区分大小写）
	Skills     string // skills_required 子串匹配
	Location   string // location 子串匹配
	Remote     *bool
}

// InternshipRepository 实习岗位数据访问接口
type InternshipRepository interface {
	Create(ctx context.Context, internship *model.Internship) error
	GetByID(ctx context.Context, id string) (*model.Internship, error)
	Update(ctx context.Context, internship *model.Internship) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filters *InternshipListFilters, offset, limit int) ([]model.Internship, int64, error)
}

// internshipRepo InternshipRepository 的 GORM 实现
type internshipRepo struct {
	db *gorm.DB
}

// NewInternshipRepo 创建 InternshipRepository 实例
func NewInternshipRepo(db *gorm.DB) InternshipRepository {
	return &internshipRepo{db: db}
}

func (r *internshipRepo) Create(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

func (r *internshipRepo) GetByID(ctx context.Context, id string) (*model.Internship, error) {
	var internship model.Internship
	err := r.db.WithContext(ctx).
		Preload("Poster").
		Preload("Poster.User").
		Where("internship_id = ?", id).
		First(&internship).Error
	if err != nil {
		return nil, err
	}
	return &internship, nil
}

func (r *internshipRepo) Update(ctx context.Context, internship *model.Internship) error {
	return r.db.WithContext(ctx).Save(internship).Error
}

func (r *internshipRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("internship_id = ?", id).
		Delete(&model.Internship{}).Error
}

func (r *internshipRepo) List(ctx context.Context, filters *InternshipListFilters, offset, limit int) ([]model.Internship, int64, error) {
	db := r.db.WithContext(ctx).Model(&model.Internship{})

	if filters != nil {
		if filters.ActiveOnly {
			db = db.Where("is_active = ?", true)
		}
		if filters.PosterID != "" {
			db = db.Where("poster_id = ?", filters.PosterID)
		}
		if filters.Q != "" {
			like := "%" + filters.Q + "%"
			db = db.Where(
				"title ILIKE ? OR description ILIKE ? OR skills_required ILIKE ?",
				like, like, like,
			)
		}
		if filters.Skills != "" {
			db = db.Where("skills_required ILIKE ?", "%"+filters.Skills+"%")
		}
		if filters.Location != "" {
			db = db.Where("location ILIKE ?", "%"+filters.Location+"%")
		}
		if filters.Remote != nil {
			db = db.Where("remote = ?", *filters.Remote)
		}
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var internships []model.Internship
	if err := db.Preload("Poster").Preload("Poster.User").
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&internships).Error; err != nil {
		return nil, 0, err
	}

	return internships, total, nil
}
