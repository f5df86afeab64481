package repository

import (
	"context"

	"gorm.io/gorm"

	"intern-portal/backend/internal/model"
)

// ApplicationRepository 投递申请数据访问接口
//
// Create 是唯一的防重入口：不做存在性预检，直接插入，
// 由 (internship_id, student_id) 唯一约束兜底，冲突以
// gorm.ErrDuplicatedKey 形式返回（TranslateError 已开启）。
type ApplicationRepository interface {
	Create(ctx context.Context, application *model.Application) error
	GetByID(ctx context.Context, id string) (*model.Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ListByStudent(ctx context.Context, studentID string, offset, limit int) ([]model.Application, int64, error)
	ListByInternship(ctx context.Context, internshipID string, offset, limit int) ([]model.Application, int64, error)
	ListByPoster(ctx context.Context, posterID string, offset, limit int) ([]model.Application, int64, error)
	CountByInternshipIDs(ctx context.Context, internshipIDs []string) (map[string]int64, error)
}

// applicationRepo ApplicationRepository 的 GORM 实现
type applicationRepo struct {
	db *gorm.DB
}

// NewApplicationRepo 创建 ApplicationRepository 实例
func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, application *model.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	var application model.Application
	err := r.db.WithContext(ctx).
		Preload("Internship").
		Preload("Internship.Poster").
		Preload("Internship.Poster.User").
		Preload("Student").
		Preload("Student.User").
		Where("application_id = ?", id).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// UpdateStatus 仅更新 status 字段，状态更新接口不允许触碰其他列
func (r *applicationRepo) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("application_id = ?", id).
		Update("status", status).Error
}

func (r *applicationRepo) ListByStudent(ctx context.Context, studentID string, offset, limit int) ([]model.Application, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("student_id = ?", studentID)
	return r.list(db, offset, limit)
}

func (r *applicationRepo) ListByInternship(ctx context.Context, internshipID string, offset, limit int) ([]model.Application, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Where("internship_id = ?", internshipID)
	return r.list(db, offset, limit)
}

// ListByPoster 企业视角：其发布的所有岗位收到的投递
func (r *applicationRepo) ListByPoster(ctx context.Context, posterID string, offset, limit int) ([]model.Application, int64, error) {
	db := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Joins("JOIN internships ON internships.internship_id = applications.internship_id").
		Where("internships.poster_id = ?", posterID)
	return r.list(db, offset, limit)
}

func (r *applicationRepo) list(db *gorm.DB, offset, limit int) ([]model.Application, int64, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var applications []model.Application
	if err := db.
		Preload("Internship").
		Preload("Internship.Poster").
		Preload("Internship.Poster.User").
		Preload("Student").
		Preload("Student.User").
		Offset(offset).Limit(limit).
		Order("applied_at DESC").
		Find(&applications).Error; err != nil {
		return nil, 0, err
	}

	return applications, total, nil
}

// CountByInternshipIDs 按岗位聚合投递数（列表响应的 applications_count）
func (r *applicationRepo) CountByInternshipIDs(ctx context.Context, internshipIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(internshipIDs))
	if len(internshipIDs) == 0 {
		return counts, nil
	}

	type row struct {
		InternshipID string
		Count        int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Application{}).
		Select("internship_id, COUNT(*) AS count").
		Where("internship_id IN ?", internshipIDs).
		Group("internship_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, rw := range rows {
		counts[rw.InternshipID] = rw.Count
	}
	return counts, nil
}
