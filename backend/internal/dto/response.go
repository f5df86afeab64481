package dto

// ── 通用响应 ──

// UserResponse 账号信息响应（脱敏）
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ProfileResponse 个人资料响应
type ProfileResponse struct {
	ID     string        `json:"id"`
	User   *UserResponse `json:"user,omitempty"`
	Role   string        `json:"role"`
	Bio    *string       `json:"bio"`
	Skills *string       `json:"skills"`
	CV     *string       `json:"cv"`

	CompanyName *string `json:"company_name"`
	Logo        *string `json:"logo"`

	Phone          *string `json:"phone,omitempty"`
	College        *string `json:"college,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
	Github         *string `json:"github,omitempty"`
	Linkedin       *string `json:"linkedin,omitempty"`
	Portfolio      *string `json:"portfolio,omitempty"`
}

// InternshipResponse 实习岗位响应
type InternshipResponse struct {
	ID                string           `json:"id"`
	Poster            *ProfileResponse `json:"poster,omitempty"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	SkillsRequired    string           `json:"skills_required"`
	Stipend           float64          `json:"stipend"`
	Duration          string           `json:"duration"`
	Location          string           `json:"location"`
	Remote            bool             `json:"remote"`
	LastDate          string           `json:"last_date"` // YYYY-MM-DD
	IsActive          bool             `json:"is_active"`
	CreatedAt         string           `json:"created_at"`
	ApplicationsCount int64            `json:"applications_count"`
}

// ApplicationResponse 投递申请响应
type ApplicationResponse struct {
	ID          string              `json:"id"`
	Internship  *InternshipResponse `json:"internship,omitempty"`
	Student     *ProfileResponse    `json:"student,omitempty"`
	CoverLetter string              `json:"cover_letter"`
	CVCopy      *string             `json:"cv_copy"`
	Status      string              `json:"status"`
	AppliedAt   string              `json:"applied_at"`
}

// AccountResponse 账号 + 资料组合响应（注册成功 / GET me）
type AccountResponse struct {
	User    UserResponse    `json:"user"`
	Profile ProfileResponse `json:"profile"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// ── 分页请求 ──

// PaginationRequest 通用分页参数（默认每页 10 条，上限 100）
type PaginationRequest struct {
	Page     int `form:"page"      binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// GetPage 获取页码（含默认值）
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}
	return p.Page
}

// GetPageSize 获取每页数量（含默认值与上限）
func (p *PaginationRequest) GetPageSize() int {
	if p.PageSize <= 0 {
		return 10
	}
	if p.PageSize > 100 {
		return 100
	}
	return p.PageSize
}

// GetOffset 计算偏移量
func (p *PaginationRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}
