package dto

// ── 投递申请模块 DTO ──

// CreateApplicationRequest 投递请求
// 同时支持 JSON 与 multipart 表单（附带简历副本时用后者）；
// student 由服务端强制为调用方本人，payload 中不可指定
type CreateApplicationRequest struct {
	InternshipID string `json:"internship_id" form:"internship_id" binding:"required,uuid"`
	CoverLetter  string `json:"cover_letter"  form:"cover_letter"  binding:"required"`
}

// UpdateApplicationStatusRequest 状态更新请求 — 仅允许修改 status 一个字段
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
