package handler

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/service"
	"intern-portal/backend/pkg/response"
	"intern-portal/backend/pkg/upload"
)

// ApplicationHandler 投递申请模块 HTTP 处理器
type ApplicationHandler struct {
	applicationSvc service.ApplicationService
}

// NewApplicationHandler 创建 ApplicationHandler
func NewApplicationHandler(applicationSvc service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationSvc: applicationSvc}
}

// Create 学生投递岗位
// POST /api/v1/applications
// 支持 JSON 与 multipart（附带简历副本时用 multipart，文件字段 cv_copy）
func (h *ApplicationHandler) Create(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.CreateApplicationRequest
	var cvCopy *multipart.FileHeader

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			response.ErrorWithDetails(c, 400, response.CodeInvalidParams, "参数校验失败", err.Error())
			return
		}
		// 简历副本可选
		if fh, err := c.FormFile("cv_copy"); err == nil {
			cvCopy = fh
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.ErrorWithDetails(c, 400, response.CodeInvalidParams, "参数校验失败", err.Error())
			return
		}
	}

	result, err := h.applicationSvc.Create(c.Request.Context(), &req, profileID, cvCopy)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, result)
}

// List 投递列表（按角色裁剪可见范围）
// GET /api/v1/applications
func (h *ApplicationHandler) List(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	list, total, err := h.applicationSvc.List(c.Request.Context(), profileID, role, &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// Get 单条投递详情（可见性与列表一致）
// GET /api/v1/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.applicationSvc.Get(c.Request.Context(), c.Param("id"), profileID, role)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// MyApplications 学生查看自己的投递
// GET /api/v1/applications/my
func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	list, total, err := h.applicationSvc.MyApplications(c.Request.Context(), profileID, &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// InternshipApplications 企业查看单个岗位的投递人
// GET /api/v1/applications/:id/internship-applications （:id 为岗位 ID）
func (h *ApplicationHandler) InternshipApplications(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	list, total, err := h.applicationSvc.InternshipApplications(c.Request.Context(), c.Param("id"), profileID, &page)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// UpdateStatus 岗位发布者更新投递状态（仅 status 字段）
// PATCH /api/v1/applications/:id
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	result, err := h.applicationSvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req, profileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// writeError 投递申请模块统一错误映射
func (h *ApplicationHandler) writeError(c *gin.Context, err error) {
	var ve *upload.ValidationError
	switch {
	case errors.Is(err, service.ErrApplicationNotFound):
		response.NotFound(c, 14001, err.Error())
	case errors.Is(err, service.ErrAlreadyApplied):
		response.Conflict(c, 14002, err.Error())
	case errors.Is(err, service.ErrInternshipInactive):
		response.BadRequest(c, 14003, err.Error())
	case errors.Is(err, service.ErrNotApplicationOwner):
		response.Forbidden(c, 14004, err.Error())
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 14005, err.Error())
	case errors.Is(err, service.ErrStatusFinal):
		response.BadRequest(c, 14006, err.Error())
	case errors.Is(err, service.ErrInternshipNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, 400, 12003, "文件校验失败", ve.Error())
	default:
		response.InternalError(c)
	}
}
