package handler

import (
	"github.com/gin-gonic/gin"

	"intern-portal/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	return mustGetString(c, "user_id")
}

// MustGetProfileID 从 Gin 上下文中安全提取 profile_id。
func MustGetProfileID(c *gin.Context) (string, bool) {
	return mustGetString(c, "profile_id")
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	return mustGetString(c, "role")
}

func mustGetString(c *gin.Context, key string) (string, bool) {
	v, exists := c.Get(key)
	if !exists {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return "", false
	}
	return s, true
}

// GetOptionalIdentity 提取可选的认证身份（公开接口上的 my_internships 过滤用）
// 未认证时返回空串，不写入任何响应
func GetOptionalIdentity(c *gin.Context) (profileID, role string) {
	if v, exists := c.Get("profile_id"); exists {
		profileID, _ = v.(string)
	}
	if v, exists := c.Get("role"); exists {
		role, _ = v.(string)
	}
	return profileID, role
}
