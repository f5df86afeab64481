package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/service"
	"intern-portal/backend/pkg/response"
)

// InternshipHandler 实习岗位模块 HTTP 处理器
type InternshipHandler struct {
	internshipSvc service.InternshipService
}

// NewInternshipHandler 创建 InternshipHandler
func NewInternshipHandler(internshipSvc service.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipSvc: internshipSvc}
}

// List 岗位列表（公开，支持过滤与分页）
// GET /api/v1/internships
func (h *InternshipHandler) List(c *gin.Context) {
	var req dto.InternshipListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	profileID, role := GetOptionalIdentity(c)

	list, total, err := h.internshipSvc.List(c.Request.Context(), &req, profileID, role)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get 岗位详情（公开）
// GET /api/v1/internships/:id
func (h *InternshipHandler) Get(c *gin.Context) {
	result, err := h.internshipSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Create 发布岗位（仅企业）
// POST /api/v1/internships
func (h *InternshipHandler) Create(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.CreateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, response.CodeInvalidParams, "参数校验失败", err.Error())
		return
	}

	result, err := h.internshipSvc.Create(c.Request.Context(), &req, profileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新岗位（仅发布者；PUT / PATCH 共用）
// PUT|PATCH /api/v1/internships/:id
func (h *InternshipHandler) Update(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	var req dto.UpdateInternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, 400, response.CodeInvalidParams, "参数校验失败", err.Error())
		return
	}

	result, err := h.internshipSvc.Update(c.Request.Context(), c.Param("id"), &req, profileID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除岗位（仅发布者）
// DELETE /api/v1/internships/:id
func (h *InternshipHandler) Delete(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	if err := h.internshipSvc.Delete(c.Request.Context(), c.Param("id"), profileID); err != nil {
		h.writeError(c, err)
		return
	}

	response.NoContent(c)
}

// writeError 实习岗位模块统一错误映射
func (h *InternshipHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInternshipNotFound):
		response.NotFound(c, 13001, err.Error())
	case errors.Is(err, service.ErrNotPoster):
		response.Forbidden(c, 13002, err.Error())
	case errors.Is(err, service.ErrInvalidLastDate):
		response.BadRequest(c, 13003, err.Error())
	default:
		response.InternalError(c)
	}
}
