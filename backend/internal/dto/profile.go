package dto

// ── 个人资料模块 DTO ──

// UpdateProfileRequest 更新个人资料请求（仅更新非 nil 字段）
// 角色不可经此修改；角色不匹配的字段会被服务层拒绝
type UpdateProfileRequest struct {
	Bio    *string `json:"bio"`
	Skills *string `json:"skills"`

	// 企业字段
	CompanyName *string `json:"company_name"`

	// 学生字段
	Phone          *string `json:"phone"           binding:"omitempty,max=15"`
	College        *string `json:"college"         binding:"omitempty,max=255"`
	Degree         *string `json:"degree"          binding:"omitempty,max=100"`
	GraduationYear *int    `json:"graduation_year" binding:"omitempty,min=1950,max=2100"`
	Github         *string `json:"github"          binding:"omitempty,url"`
	Linkedin       *string `json:"linkedin"        binding:"omitempty,url"`
	Portfolio      *string `json:"portfolio"       binding:"omitempty,url"`
}
