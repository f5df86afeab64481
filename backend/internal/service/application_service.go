package service

import (
	"context"
	"errors"
	"mime/multipart"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/model"
	"intern-portal/backend/internal/repository"
	"intern-portal/backend/pkg/upload"
)

// ── 投递申请模块业务错误 ──

var (
	ErrApplicationNotFound = errors.New("投递记录不存在")
	ErrAlreadyApplied      = errors.New("你已投递过该岗位")
	ErrInternshipInactive  = errors.New("该岗位已停止接收投递")
	ErrNotApplicationOwner = errors.New("只能更新自己发布岗位的投递状态")
	ErrInvalidStatus       = errors.New("无效的投递状态")
	ErrStatusFinal         = errors.New("终态投递不允许再变更状态")
)

// ApplicationService 投递申请业务接口
//
// 防重复投递采用原子插入：不做 check-then-act 预检，
// 直接依赖 (internship_id, student_id) 唯一约束，冲突翻译为 ErrAlreadyApplied。
type ApplicationService interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest, studentProfileID string, cvCopy *multipart.FileHeader) (*dto.ApplicationResponse, error)
	List(ctx context.Context, callerProfileID, callerRole string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error)
	MyApplications(ctx context.Context, studentProfileID string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error)
	InternshipApplications(ctx context.Context, internshipID, posterProfileID string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest, callerProfileID string) (*dto.ApplicationResponse, error)
	Get(ctx context.Context, id, callerProfileID, callerRole string) (*dto.ApplicationResponse, error)
}

type applicationService struct {
	repo   *repository.Repository
	store  *upload.Store
	logger *zap.Logger
}

// NewApplicationService 创建 ApplicationService 实例
func NewApplicationService(repo *repository.Repository, store *upload.Store, logger *zap.Logger) ApplicationService {
	return &applicationService{repo: repo, store: store, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *applicationService) Create(ctx context.Context, req *dto.CreateApplicationRequest, studentProfileID string, cvCopy *multipart.FileHeader) (*dto.ApplicationResponse, error) {
	internship, err := s.repo.Internship.GetByID(ctx, req.InternshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		s.logger.Error("查询岗位失败", zap.String("id", req.InternshipID), zap.Error(err))
		return nil, err
	}
	if !internship.IsActive {
		return nil, ErrInternshipInactive
	}

	var cvPath *string
	if cvCopy != nil {
		if err := upload.ValidateCV("cv_copy", cvCopy); err != nil {
			return nil, err
		}
		path, err := s.store.Save(cvCopy, "application_cvs")
		if err != nil {
			s.logger.Error("保存简历副本失败", zap.Error(err))
			return nil, err
		}
		cvPath = &path
	}

	// student 由服务端强制为调用方本人，status 固定从 pending 开始
	application := &model.Application{
		InternshipID: req.InternshipID,
		StudentID:    studentProfileID,
		CoverLetter:  req.CoverLetter,
		CVCopyPath:   cvPath,
		Status:       model.StatusPending,
	}

	if err := s.repo.Application.Create(ctx, application); err != nil {
		if cvPath != nil {
			s.store.Remove(*cvPath)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		s.logger.Error("创建投递失败", zap.Error(err))
		return nil, err
	}

	created, err := s.repo.Application.GetByID(ctx, application.ApplicationID)
	if err != nil {
		s.logger.Error("回查投递失败", zap.Error(err))
		return nil, err
	}

	return toApplicationResponse(created), nil
}

// ────────────────────── List ──────────────────────
//
// 角色可见性：学生只看到自己的投递，企业只看到自己岗位收到的投递

func (s *applicationService) List(ctx context.Context, callerProfileID, callerRole string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	var (
		applications []model.Application
		total        int64
		err          error
	)

	switch callerRole {
	case model.RoleStudent:
		applications, total, err = s.repo.Application.ListByStudent(ctx, callerProfileID, page.GetOffset(), page.GetPageSize())
	case model.RoleCompany:
		applications, total, err = s.repo.Application.ListByPoster(ctx, callerProfileID, page.GetOffset(), page.GetPageSize())
	default:
		return []dto.ApplicationResponse{}, 0, nil
	}
	if err != nil {
		s.logger.Error("查询投递列表失败", zap.Error(err))
		return nil, 0, err
	}

	return s.toResponses(applications), total, nil
}

// ────────────────────── MyApplications ──────────────────────

func (s *applicationService) MyApplications(ctx context.Context, studentProfileID string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	applications, total, err := s.repo.Application.ListByStudent(ctx, studentProfileID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询我的投递失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toResponses(applications), total, nil
}

// ────────────────────── InternshipApplications ──────────────────────
//
// 企业查看单个岗位的投递人列表；岗位不存在或不属于调用方时统一返回
// ErrInternshipNotFound，不向外泄露他人岗位的存在性

func (s *applicationService) InternshipApplications(ctx context.Context, internshipID, posterProfileID string, page *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	internship, err := s.repo.Internship.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrInternshipNotFound
		}
		s.logger.Error("查询岗位失败", zap.String("id", internshipID), zap.Error(err))
		return nil, 0, err
	}
	if internship.PosterID != posterProfileID {
		return nil, 0, ErrInternshipNotFound
	}

	applications, total, err := s.repo.Application.ListByInternship(ctx, internshipID, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询岗位投递失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toResponses(applications), total, nil
}

// ────────────────────── UpdateStatus ──────────────────────
//
// 仅岗位发布者可更新状态；payload 只允许 status 一个字段；
// 终态（accepted / rejected）冻结

func (s *applicationService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateApplicationStatusRequest, callerProfileID string) (*dto.ApplicationResponse, error) {
	application, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if application.Internship == nil || application.Internship.PosterID != callerProfileID {
		return nil, ErrNotApplicationOwner
	}

	if !model.ValidStatus(req.Status) {
		return nil, ErrInvalidStatus
	}
	if model.TerminalStatus(application.Status) {
		return nil, ErrStatusFinal
	}

	if err := s.repo.Application.UpdateStatus(ctx, id, req.Status); err != nil {
		s.logger.Error("更新投递状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	application.Status = req.Status
	return toApplicationResponse(application), nil
}

// ────────────────────── Get ──────────────────────
//
// 单条读取沿用列表可见性：学生看自己的，企业看自己岗位的

func (s *applicationService) Get(ctx context.Context, id, callerProfileID, callerRole string) (*dto.ApplicationResponse, error) {
	application, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch callerRole {
	case model.RoleStudent:
		if application.StudentID != callerProfileID {
			return nil, ErrApplicationNotFound
		}
	case model.RoleCompany:
		if application.Internship == nil || application.Internship.PosterID != callerProfileID {
			return nil, ErrApplicationNotFound
		}
	default:
		return nil, ErrApplicationNotFound
	}

	return toApplicationResponse(application), nil
}

func (s *applicationService) getByID(ctx context.Context, id string) (*model.Application, error) {
	application, err := s.repo.Application.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		s.logger.Error("查询投递失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return application, nil
}

func (s *applicationService) toResponses(applications []model.Application) []dto.ApplicationResponse {
	result := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		result = append(result, *toApplicationResponse(&applications[i]))
	}
	return result
}
