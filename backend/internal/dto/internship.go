package dto

// ── 实习岗位模块 DTO ──

// CreateInternshipRequest 发布岗位请求
type CreateInternshipRequest struct {
	Title          string  `json:"title"           binding:"required,max=255"`
	Description    string  `json:"description"     binding:"required"`
	SkillsRequired string  `json:"skills_required" binding:"required"`
	Stipend        float64 `json:"stipend"         binding:"min=0"`
	Duration       string  `json:"duration"        binding:"required,max=100"`
	Location       string  `json:"location"        binding:"required,max=255"`
	Remote         bool    `json:"remote"`
	LastDate       string  `json:"last_date"       binding:"required,datetime=2006-01-02"`
	IsActive       *bool   `json:"is_active"` // 缺省 true
}

// UpdateInternshipRequest 更新岗位请求（仅更新非 nil 字段，PUT/PATCH 共用）
type UpdateInternshipRequest struct {
	Title          *string  `json:"title"           binding:"omitempty,max=255"`
	Description    *string  `json:"description"`
	SkillsRequired *string  `json:"skills_required"`
	Stipend        *float64 `json:"stipend"         binding:"omitempty,min=0"`
	Duration       *string  `json:"duration"        binding:"omitempty,max=100"`
	Location       *string  `json:"location"        binding:"omitempty,max=255"`
	Remote         *bool    `json:"remote"`
	LastDate       *string  `json:"last_date"       binding:"omitempty,datetime=2006-01-02"`
	IsActive       *bool    `json:"is_active"`
}

// InternshipListRequest 岗位列表查询参数
// remote 接受宽松布尔（true/1/yes 为真，其余为假）；
// my_internships 仅对已认证的企业调用方生效
type InternshipListRequest struct {
	Q             string `form:"q"`
	Skills        string `form:"skills"`
	Location      string `form:"location"`
	Remote        string `form:"remote"`
	MyInternships string `form:"my_internships"`
	PaginationRequest
}
