package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
// role 缺省为 student；company_name / bio 仅在 role=company 时生效
type RegisterRequest struct {
	Username    string `json:"username"     binding:"required,min=3,max=150"`
	Email       string `json:"email"        binding:"required,email"`
	Password    string `json:"password"     binding:"required,min=8,max=72"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        string `json:"role"`
	CompanyName string `json:"company_name"`
	Bio         string `json:"bio"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
