package handler

import "intern-portal/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	Profile     *ProfileHandler
	Internship  *InternshipHandler
	Application *ApplicationHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		Profile:     NewProfileHandler(svc.Profile),
		Internship:  NewInternshipHandler(svc.Internship),
		Application: NewApplicationHandler(svc.Application),
		Export:      NewExportHandler(svc.Export),
	}
}
