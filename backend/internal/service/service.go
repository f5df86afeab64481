package service

import (
	"go.uber.org/zap"

	"intern-portal/backend/config"
	"intern-portal/backend/internal/repository"
	"intern-portal/backend/pkg/jwt"
	"intern-portal/backend/pkg/redis"
	"intern-portal/backend/pkg/upload"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	Profile     ProfileService
	Internship  InternshipService
	Application ApplicationService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store *upload.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Profile:     NewProfileService(repo, store, logger),
		Internship:  NewInternshipService(repo, logger),
		Application: NewApplicationService(repo, store, logger),
		Export:      NewExportService(repo, logger),
	}
}
