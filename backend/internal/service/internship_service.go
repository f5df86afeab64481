package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/model"
	"intern-portal/backend/internal/repository"
)

// ── 实习岗位模块业务错误 ──

var (
	ErrInternshipNotFound = errors.New("实习岗位不存在")
	ErrNotPoster          = errors.New("只有发布者可以操作该岗位")
	ErrInvalidLastDate    = errors.New("截止日期格式无效，应为 YYYY-MM-DD")
)

// InternshipService 实习岗位业务接口
type InternshipService interface {
	List(ctx context.Context, req *dto.InternshipListRequest, callerProfileID, callerRole string) ([]dto.InternshipResponse, int64, error)
	Get(ctx context.Context, id string) (*dto.InternshipResponse, error)
	Create(ctx context.Context, req *dto.CreateInternshipRequest, posterProfileID string) (*dto.InternshipResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateInternshipRequest, callerProfileID string) (*dto.InternshipResponse, error)
	Delete(ctx context.Context, id string, callerProfileID string) error
}

type internshipService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInternshipService 创建 InternshipService 实例
func NewInternshipService(repo *repository.Repository, logger *zap.Logger) InternshipService {
	return &internshipService{repo: repo, logger: logger}
}

// looseBool 宽松布尔解析：true / 1 / yes 为真，其余为假
func looseBool(s string) bool {
	switch s {
	case "true", "1", "yes", "True", "TRUE", "Yes", "YES":
		return true
	}
	return false
}

// ────────────────────── List ──────────────────────
//
// 默认只返回 is_active=true 的岗位，倒序分页；
// 所有过滤条件可叠加。my_internships 仅对已认证的企业生效，
// 未认证或学生调用方会被忽略（与匿名可见性保持一致）。

func (s *internshipService) List(ctx context.Context, req *dto.InternshipListRequest, callerProfileID, callerRole string) ([]dto.InternshipResponse, int64, error) {
	filters := &repository.InternshipListFilters{
		ActiveOnly: true,
		Q:          req.Q,
		Skills:     req.Skills,
		Location:   req.Location,
	}

	if req.Remote != "" {
		remote := looseBool(req.Remote)
		filters.Remote = &remote
	}

	if req.MyInternships != "" && looseBool(req.MyInternships) &&
		callerProfileID != "" && callerRole == model.RoleCompany {
		filters.PosterID = callerProfileID
	}

	internships, total, err := s.repo.Internship.List(ctx, filters, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("查询岗位列表失败", zap.Error(err))
		return nil, 0, err
	}

	ids := make([]string, 0, len(internships))
	for _, i := range internships {
		ids = append(ids, i.InternshipID)
	}
	counts, err := s.repo.Application.CountByInternshipIDs(ctx, ids)
	if err != nil {
		s.logger.Error("统计投递数失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.InternshipResponse, 0, len(internships))
	for i := range internships {
		item := &internships[i]
		result = append(result, *toInternshipResponse(item, counts[item.InternshipID]))
	}

	return result, total, nil
}

// ────────────────────── Get ──────────────────────

func (s *internshipService) Get(ctx context.Context, id string) (*dto.InternshipResponse, error) {
	internship, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.Application.CountByInternshipIDs(ctx, []string{id})
	if err != nil {
		s.logger.Error("统计投递数失败", zap.Error(err))
		return nil, err
	}

	return toInternshipResponse(internship, counts[id]), nil
}

// ────────────────────── Create ──────────────────────

func (s *internshipService) Create(ctx context.Context, req *dto.CreateInternshipRequest, posterProfileID string) (*dto.InternshipResponse, error) {
	lastDate, err := time.Parse("2006-01-02", req.LastDate)
	if err != nil {
		return nil, ErrInvalidLastDate
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	internship := &model.Internship{
		PosterID:       posterProfileID,
		Title:          req.Title,
		Description:    req.Description,
		SkillsRequired: req.SkillsRequired,
		Stipend:        req.Stipend,
		Duration:       req.Duration,
		Location:       req.Location,
		Remote:         req.Remote,
		LastDate:       lastDate,
		IsActive:       isActive,
	}

	if err := s.repo.Internship.Create(ctx, internship); err != nil {
		s.logger.Error("创建岗位失败", zap.Error(err))
		return nil, err
	}

	// 重新加载以获取发布者关联
	created, err := s.getByID(ctx, internship.InternshipID)
	if err != nil {
		return nil, err
	}

	return toInternshipResponse(created, 0), nil
}

// ────────────────────── Update ──────────────────────

func (s *internshipService) Update(ctx context.Context, id string, req *dto.UpdateInternshipRequest, callerProfileID string) (*dto.InternshipResponse, error) {
	internship, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship.PosterID != callerProfileID {
		return nil, ErrNotPoster
	}

	if req.Title != nil {
		internship.Title = *req.Title
	}
	if req.Description != nil {
		internship.Description = *req.Description
	}
	if req.SkillsRequired != nil {
		internship.SkillsRequired = *req.SkillsRequired
	}
	if req.Stipend != nil {
		internship.Stipend = *req.Stipend
	}
	if req.Duration != nil {
		internship.Duration = *req.Duration
	}
	if req.Location != nil {
		internship.Location = *req.Location
	}
	if req.Remote != nil {
		internship.Remote = *req.Remote
	}
	if req.LastDate != nil {
		lastDate, err := time.Parse("2006-01-02", *req.LastDate)
		if err != nil {
			return nil, ErrInvalidLastDate
		}
		internship.LastDate = lastDate
	}
	if req.IsActive != nil {
		internship.IsActive = *req.IsActive
	}

	if err := s.repo.Internship.Update(ctx, internship); err != nil {
		s.logger.Error("更新岗位失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Application.CountByInternshipIDs(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	return toInternshipResponse(internship, counts[id]), nil
}

// ────────────────────── Delete ──────────────────────

func (s *internshipService) Delete(ctx context.Context, id string, callerProfileID string) error {
	internship, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}
	if internship.PosterID != callerProfileID {
		return ErrNotPoster
	}

	if err := s.repo.Internship.Delete(ctx, id); err != nil {
		s.logger.Error("删除岗位失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

func (s *internshipService) getByID(ctx context.Context, id string) (*model.Internship, error) {
	internship, err := s.repo.Internship.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		s.logger.Error("查询岗位失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return internship, nil
}
