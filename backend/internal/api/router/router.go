package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"intern-portal/backend/config"
	"intern-portal/backend/internal/api/handler"
	"intern-portal/backend/internal/api/middleware"
	"intern-portal/backend/internal/model"
	"intern-portal/backend/pkg/jwt"
	"intern-portal/backend/pkg/redis"
	"intern-portal/backend/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(10 << 20)) // 需容纳简历上传

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── 上传文件静态服务 ──
	r.Static("/uploads", cfg.Upload.Dir)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录注册施加限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/register", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Register)
			auth.POST("/login", middleware.RateLimit(rdb, 20, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 公开岗位列表（可选认证：携带 Token 时支持 my_internships 过滤）
		internships := v1.Group("/internships")
		internships.Use(middleware.OptionalJWTAuth(jwtMgr, rdb))
		{
			internships.GET("", h.Internship.List)
			internships.GET("/:id", h.Internship.Get)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 档案模块
			profile := authorized.Group("/profile")
			{
				profile.GET("", h.Profile.Get)
				profile.PUT("", h.Profile.Update)
				profile.PATCH("", h.Profile.Update)
				profile.POST("/cv", middleware.RoleAuth(model.RoleStudent), h.Profile.UploadCV)
				profile.POST("/logo", middleware.RoleAuth(model.RoleCompany), h.Profile.UploadLogo)
			}

			// 岗位模块（写操作；所有权校验在 Service 层）
			authorized.POST("/internships", middleware.RoleAuth(model.RoleCompany), h.Internship.Create)
			authorized.PUT("/internships/:id", middleware.RoleAuth(model.RoleCompany), h.Internship.Update)
			authorized.PATCH("/internships/:id", middleware.RoleAuth(model.RoleCompany), h.Internship.Update)
			authorized.DELETE("/internships/:id", middleware.RoleAuth(model.RoleCompany), h.Internship.Delete)

			// 投递模块
			applications := authorized.Group("/applications")
			{
				applications.POST("", middleware.RoleAuth(model.RoleStudent), h.Application.Create)
				applications.GET("", h.Application.List)
				applications.GET("/my", middleware.RoleAuth(model.RoleStudent), h.Application.MyApplications)
				applications.GET("/:id", h.Application.Get)
				applications.GET("/:id/internship-applications", middleware.RoleAuth(model.RoleCompany), h.Application.InternshipApplications)
				applications.PATCH("/:id", middleware.RoleAuth(model.RoleCompany), h.Application.UpdateStatus)
			}

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/internships/:id/applications.xlsx", middleware.RoleAuth(model.RoleCompany), h.Export.ApplicantsExcel)
				export.GET("/applications/calendar.ics", middleware.RoleAuth(model.RoleStudent), h.Export.DeadlineCalendar)
			}
		}
	}

	// ── SPA 前端回退 ──
	// 非 API 路径交给前端路由：存在的静态文件直接返回，否则回退 index.html
	r.NoRoute(spaFallback(cfg.Server.FrontendDist))

	return r
}

// spaFallback 前端单页应用回退处理
func spaFallback(distDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/uploads/") {
			response.NotFound(c, response.CodeInvalidParams, "资源不存在")
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			response.NotFound(c, response.CodeInvalidParams, "资源不存在")
			return
		}

		full := filepath.Join(distDir, filepath.Clean("/"+path))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		index := filepath.Join(distDir, "index.html")
		if _, err := os.Stat(index); err != nil {
			response.NotFound(c, response.CodeInvalidParams, "资源不存在")
			return
		}
		c.File(index)
	}
}
