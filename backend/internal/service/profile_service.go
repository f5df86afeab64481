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

// ── 个人资料模块业务错误 ──

var (
	ErrProfileNotFound  = errors.New("个人资料不存在")
	ErrCompanyFieldOnly = errors.New("学生资料不能设置企业字段")
	ErrStudentFieldOnly = errors.New("企业资料不能设置学生字段")
	ErrCVStudentOnly    = errors.New("仅学生可上传简历")
	ErrLogoCompanyOnly  = errors.New("仅企业可上传 Logo")
)

// ProfileService 个人资料业务接口
// 角色在注册时固定，任何更新都不触碰 role 字段；
// 与角色不匹配的字段更新会被显式拒绝，而不是静默落库
type ProfileService interface {
	Get(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	SaveCV(ctx context.Context, userID string, fh *multipart.FileHeader) (*dto.ProfileResponse, error)
	SaveLogo(ctx context.Context, userID string, fh *multipart.FileHeader) (*dto.ProfileResponse, error)
}

type profileService struct {
	repo   *repository.Repository
	store  *upload.Store
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(repo *repository.Repository, store *upload.Store, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, store: store, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *profileService) Get(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// ────────────────────── Update ──────────────────────

func (s *profileService) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 角色与字段的匹配校验
	if profile.Role == model.RoleStudent && req.CompanyName != nil {
		return nil, ErrCompanyFieldOnly
	}
	if profile.Role == model.RoleCompany {
		if req.Phone != nil || req.College != nil || req.Degree != nil ||
			req.GraduationYear != nil || req.Github != nil || req.Linkedin != nil || req.Portfolio != nil {
			return nil, ErrStudentFieldOnly
		}
	}

	// 仅更新非 nil 字段
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Skills != nil {
		profile.Skills = req.Skills
	}
	if req.CompanyName != nil {
		profile.CompanyName = req.CompanyName
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.College != nil {
		profile.College = req.College
	}
	if req.Degree != nil {
		profile.Degree = req.Degree
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = req.GraduationYear
	}
	if req.Github != nil {
		profile.Github = req.Github
	}
	if req.Linkedin != nil {
		profile.Linkedin = req.Linkedin
	}
	if req.Portfolio != nil {
		profile.Portfolio = req.Portfolio
	}

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.logger.Error("更新个人资料失败", zap.String("profile_id", profile.ProfileID), zap.Error(err))
		return nil, err
	}

	return toProfileResponse(profile), nil
}

// ────────────────────── SaveCV ──────────────────────

func (s *profileService) SaveCV(ctx context.Context, userID string, fh *multipart.FileHeader) (*dto.ProfileResponse, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Role != model.RoleStudent {
		return nil, ErrCVStudentOnly
	}

	if err := upload.ValidateCV("cv", fh); err != nil {
		return nil, err
	}

	path, err := s.store.Save(fh, "cvs")
	if err != nil {
		s.logger.Error("保存简历失败", zap.Error(err))
		return nil, err
	}

	old := profile.CVPath
	profile.CVPath = &path
	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.store.Remove(path)
		s.logger.Error("更新简历路径失败", zap.Error(err))
		return nil, err
	}
	if old != nil {
		s.store.Remove(*old)
	}

	return toProfileResponse(profile), nil
}

// ────────────────────── SaveLogo ──────────────────────

func (s *profileService) SaveLogo(ctx context.Context, userID string, fh *multipart.FileHeader) (*dto.ProfileResponse, error) {
	profile, err := s.getByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile.Role != model.RoleCompany {
		return nil, ErrLogoCompanyOnly
	}

	if err := upload.ValidateImage("logo", fh); err != nil {
		return nil, err
	}

	path, err := s.store.Save(fh, "logos")
	if err != nil {
		s.logger.Error("保存 Logo 失败", zap.Error(err))
		return nil, err
	}

	old := profile.LogoPath
	profile.LogoPath = &path
	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		s.store.Remove(path)
		s.logger.Error("更新 Logo 路径失败", zap.Error(err))
		return nil, err
	}
	if old != nil {
		s.store.Remove(*old)
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) getByUser(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.repo.Profile.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		s.logger.Error("查询个人资料失败", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return profile, nil
}
