package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/service"
	"intern-portal/backend/pkg/response"
	"intern-portal/backend/pkg/upload"
)

// ProfileHandler 个人资料模块 HTTP 处理器
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler 创建 ProfileHandler
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get 当前用户的个人资料
// GET /api/v1/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.profileSvc.Get(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Update 更新当前用户的个人资料（PUT / PATCH 共用，仅更新提交的字段）
// PUT|PATCH /api/v1/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, response.CodeInvalidParams, "参数校验失败", err.Error())
		return
	}

	result, err := h.profileSvc.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// UploadCV 学生上传简历
// POST /api/v1/profile/cv
func (h *ProfileHandler) UploadCV(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("cv")
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "缺少 cv 文件字段")
		return
	}

	result, err := h.profileSvc.SaveCV(c.Request.Context(), userID, fh)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// UploadLogo 企业上传 Logo
// POST /api/v1/profile/logo
func (h *ProfileHandler) UploadLogo(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "缺少 logo 文件字段")
		return
	}

	result, err := h.profileSvc.SaveLogo(c.Request.Context(), userID, fh)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// writeError 个人资料模块统一错误映射
func (h *ProfileHandler) writeError(c *gin.Context, err error) {
	var ve *upload.ValidationError
	switch {
	case errors.Is(err, service.ErrProfileNotFound):
		response.NotFound(c, 12001, err.Error())
	case errors.Is(err, service.ErrCompanyFieldOnly), errors.Is(err, service.ErrStudentFieldOnly):
		response.BadRequest(c, 12002, err.Error())
	case errors.Is(err, service.ErrCVStudentOnly), errors.Is(err, service.ErrLogoCompanyOnly):
		response.Forbidden(c, response.CodeForbidden, err.Error())
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, 400, 12003, "文件校验失败", ve.Error())
	default:
		response.InternalError(c)
	}
}
