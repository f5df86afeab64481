package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/internal/service"
	"intern-portal/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ApplicantsExcel 导出单个岗位的投递人名单
// GET /api/v1/export/internships/:id/applications.xlsx
func (h *ExportHandler) ApplicantsExcel(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ApplicantsExcel(c.Request.Context(), c.Param("id"), profileID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInternshipNotFound):
			response.NotFound(c, 13001, err.Error())
		case errors.Is(err, service.ErrExportNoApplications):
			response.NotFound(c, 14007, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}

// DeadlineCalendar 导出学生已投递岗位的截止日期日历
// GET /api/v1/export/applications/calendar.ics
func (h *ExportHandler) DeadlineCalendar(c *gin.Context) {
	profileID, ok := MustGetProfileID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.DeadlineCalendar(c.Request.Context(), profileID)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
