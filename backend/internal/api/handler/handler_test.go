package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"intern-portal/backend/internal/dto"
	"intern-portal/backend/internal/service"
	"intern-portal/backend/pkg/response"
	"intern-portal/backend/pkg/upload"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock AuthService ──

type mockAuthService struct {
	registerResult   *dto.AccountResponse
	registerErr      error
	loginResult      *dto.TokenResponse
	loginErr         error
	refreshResult    *dto.TokenResponse
	refreshErr       error
	logoutErr        error
	gotLogoutJti     string
	getCurrentResult *dto.AccountResponse
	getCurrentErr    error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.AccountResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) RefreshToken(_ context.Context, _ string) (*dto.TokenResponse, error) {
	return m.refreshResult, m.refreshErr
}
func (m *mockAuthService) Logout(_ context.Context, jti string, _ time.Time) error {
	m.gotLogoutJti = jti
	return m.logoutErr
}
func (m *mockAuthService) GetCurrentUser(_ context.Context, _ string) (*dto.AccountResponse, error) {
	return m.getCurrentResult, m.getCurrentErr
}

// ── Mock ProfileService ──

type mockProfileService struct {
	getResult    *dto.ProfileResponse
	getErr       error
	updateResult *dto.ProfileResponse
	updateErr    error
	cvResult     *dto.ProfileResponse
	cvErr        error
	logoResult   *dto.ProfileResponse
	logoErr      error
}

func (m *mockProfileService) Get(_ context.Context, _ string) (*dto.ProfileResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockProfileService) Update(_ context.Context, _ string, _ *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockProfileService) SaveCV(_ context.Context, _ string, _ *multipart.FileHeader) (*dto.ProfileResponse, error) {
	return m.cvResult, m.cvErr
}
func (m *mockProfileService) SaveLogo(_ context.Context, _ string, _ *multipart.FileHeader) (*dto.ProfileResponse, error) {
	return m.logoResult, m.logoErr
}

// ── Mock InternshipService ──

type mockInternshipService struct {
	listResult   []dto.InternshipResponse
	listTotal    int64
	listErr      error
	gotProfileID string
	gotRole      string
	getResult    *dto.InternshipResponse
	getErr       error
	createResult *dto.InternshipResponse
	createErr    error
	updateResult *dto.InternshipResponse
	updateErr    error
	deleteErr    error
}

func (m *mockInternshipService) List(_ context.Context, _ *dto.InternshipListRequest, profileID, role string) ([]dto.InternshipResponse, int64, error) {
	m.gotProfileID = profileID
	m.gotRole = role
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockInternshipService) Get(_ context.Context, _ string) (*dto.InternshipResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockInternshipService) Create(_ context.Context, _ *dto.CreateInternshipRequest, _ string) (*dto.InternshipResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockInternshipService) Update(_ context.Context, _ string, _ *dto.UpdateInternshipRequest, _ string) (*dto.InternshipResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockInternshipService) Delete(_ context.Context, _, _ string) error {
	return m.deleteErr
}

// ── Mock ApplicationService ──

type mockApplicationService struct {
	createResult *dto.ApplicationResponse
	createErr    error
	gotCVCopy    *multipart.FileHeader
	listResult   []dto.ApplicationResponse
	listTotal    int64
	listErr      error
	myResult     []dto.ApplicationResponse
	myTotal      int64
	myErr        error
	byIntResult  []dto.ApplicationResponse
	byIntTotal   int64
	byIntErr     error
	updateResult *dto.ApplicationResponse
	updateErr    error
	getResult    *dto.ApplicationResponse
	getErr       error
}

func (m *mockApplicationService) Create(_ context.Context, _ *dto.CreateApplicationRequest, _ string, cvCopy *multipart.FileHeader) (*dto.ApplicationResponse, error) {
	m.gotCVCopy = cvCopy
	return m.createResult, m.createErr
}
func (m *mockApplicationService) List(_ context.Context, _, _ string, _ *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}
func (m *mockApplicationService) MyApplications(_ context.Context, _ string, _ *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	return m.myResult, m.myTotal, m.myErr
}
func (m *mockApplicationService) InternshipApplications(_ context.Context, _, _ string, _ *dto.PaginationRequest) ([]dto.ApplicationResponse, int64, error) {
	return m.byIntResult, m.byIntTotal, m.byIntErr
}
func (m *mockApplicationService) UpdateStatus(_ context.Context, _ string, _ *dto.UpdateApplicationStatusRequest, _ string) (*dto.ApplicationResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockApplicationService) Get(_ context.Context, _, _, _ string) (*dto.ApplicationResponse, error) {
	return m.getResult, m.getErr
}

// ── Mock ExportService ──

type mockExportService struct {
	excelBuf      *bytes.Buffer
	excelFilename string
	excelErr      error
	calBuf        *bytes.Buffer
	calFilename   string
	calErr        error
}

func (m *mockExportService) ApplicantsExcel(_ context.Context, _, _ string) (*bytes.Buffer, string, error) {
	return m.excelBuf, m.excelFilename, m.excelErr
}
func (m *mockExportService) DeadlineCalendar(_ context.Context, _ string) (*bytes.Buffer, string, error) {
	return m.calBuf, m.calFilename, m.calErr
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func setAuth(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", "test-user-id")
		c.Set("profile_id", "test-profile-id")
		c.Set("role", role)
		c.Set("jti", "test-jti")
		c.Set("token_expires_at", time.Now().Add(30*time.Minute))
	}
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ═══════════════════════════════════════════════════════════
// AuthHandler Tests
// ═══════════════════════════════════════════════════════════

func TestAuthHandler_Register_Success(t *testing.T) {
	mock := &mockAuthService{
		registerResult: &dto.AccountResponse{
			User:    dto.UserResponse{ID: "user-1", Username: "alice"},
			Profile: dto.ProfileResponse{ID: "profile-1", Role: "student"},
		},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	mock := &mockAuthService{registerErr: service.ErrUsernameExists}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "password123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11002 {
		t.Errorf("expected error code 11002, got %d", resp.Code)
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/register", jsonBody(dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "short",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("密码长度不足应 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != response.CodeInvalidParams {
		t.Errorf("expected code %d, got %d", response.CodeInvalidParams, resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "alice",
		Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 11001 {
		t.Errorf("expected error code 11001, got %d", resp.Code)
	}
}

func TestAuthHandler_Logout_PassesJti(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/logout", nil)

	r := gin.New()
	r.POST("/auth/logout", setAuth("student"), h.Logout)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.gotLogoutJti != "test-jti" {
		t.Errorf("Logout 应收到中间件注入的 jti，实际=%s", mock.gotLogoutJti)
	}
}

func TestAuthHandler_GetCurrentUser_Unauthenticated(t *testing.T) {
	mock := &mockAuthService{}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/auth/me", nil)

	r := gin.New()
	r.GET("/auth/me", h.GetCurrentUser)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("未注入身份应 401, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ProfileHandler Tests
// ═══════════════════════════════════════════════════════════

func TestProfileHandler_Update_RoleMismatch(t *testing.T) {
	mock := &mockProfileService{updateErr: service.ErrCompanyFieldOnly}
	h := NewProfileHandler(mock)

	w := httptest.NewRecorder()
	name := "Evil Corp"
	req := httptest.NewRequest("PUT", "/profile", jsonBody(dto.UpdateProfileRequest{
		CompanyName: &name,
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/profile", setAuth("student"), h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12002 {
		t.Errorf("expected error code 12002, got %d", resp.Code)
	}
}

func TestProfileHandler_UploadCV_MissingFile(t *testing.T) {
	mock := &mockProfileService{}
	h := NewProfileHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/profile/cv", nil)

	r := gin.New()
	r.POST("/profile/cv", setAuth("student"), h.UploadCV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("缺少文件字段应 400, got %d", w.Code)
	}
}

func TestProfileHandler_UploadCV_ValidationError(t *testing.T) {
	mock := &mockProfileService{
		cvErr: &upload.ValidationError{Field: "cv", Reason: "不支持的文件格式"},
	}
	h := NewProfileHandler(mock)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("cv", "resume.exe")
	part.Write([]byte("MZ"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/profile/cv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	r := gin.New()
	r.POST("/profile/cv", setAuth("student"), h.UploadCV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 12003 {
		t.Errorf("expected error code 12003, got %d", resp.Code)
	}
	if resp.Details == "" {
		t.Error("文件校验失败应返回字段级 details")
	}
}

func TestProfileHandler_UploadCV_Forbidden(t *testing.T) {
	mock := &mockProfileService{cvErr: service.ErrCVStudentOnly}
	h := NewProfileHandler(mock)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("cv", "resume.pdf")
	part.Write([]byte("x"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/profile/cv", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	r := gin.New()
	r.POST("/profile/cv", setAuth("company"), h.UploadCV)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// InternshipHandler Tests
// ═══════════════════════════════════════════════════════════

func TestInternshipHandler_List_Anonymous(t *testing.T) {
	mock := &mockInternshipService{
		listResult: []dto.InternshipResponse{{ID: "internship-1", Title: "后端实习生"}},
		listTotal:  1,
	}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internships?page=1&page_size=10", nil)

	r := gin.New()
	r.GET("/internships", h.List)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.gotProfileID != "" || mock.gotRole != "" {
		t.Error("匿名请求不应携带身份")
	}
	if !strings.Contains(w.Body.String(), `"total":1`) {
		t.Error("响应应包含分页元数据")
	}
}

func TestInternshipHandler_List_AuthenticatedIdentityForwarded(t *testing.T) {
	mock := &mockInternshipService{}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internships?my_internships=true", nil)

	r := gin.New()
	r.GET("/internships", setAuth("company"), h.List)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if mock.gotProfileID != "test-profile-id" || mock.gotRole != "company" {
		t.Errorf("已认证身份应透传给服务层，实际 profile=%s role=%s", mock.gotProfileID, mock.gotRole)
	}
}

func TestInternshipHandler_Get_NotFound(t *testing.T) {
	mock := &mockInternshipService{getErr: service.ErrInternshipNotFound}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/internships/nonexistent", nil)

	r := gin.New()
	r.GET("/internships/:id", h.Get)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13001 {
		t.Errorf("expected error code 13001, got %d", resp.Code)
	}
}

func TestInternshipHandler_Create_BadDateFormat(t *testing.T) {
	mock := &mockInternshipService{}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/internships", jsonBody(map[string]interface{}{
		"title":           "岗位",
		"description":     "描述",
		"skills_required": "Go",
		"duration":        "3 months",
		"location":        "Beijing",
		"last_date":       "31-12-2026",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/internships", setAuth("company"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("日期格式错误应 400, got %d", w.Code)
	}
}

func TestInternshipHandler_Update_NotPoster(t *testing.T) {
	mock := &mockInternshipService{updateErr: service.ErrNotPoster}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/internships/internship-1", jsonBody(map[string]string{
		"title": "篡改",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PUT("/internships/:id", setAuth("company"), h.Update)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13002 {
		t.Errorf("expected error code 13002, got %d", resp.Code)
	}
}

func TestInternshipHandler_Delete_NoContent(t *testing.T) {
	mock := &mockInternshipService{}
	h := NewInternshipHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/internships/internship-1", nil)

	r := gin.New()
	r.DELETE("/internships/:id", setAuth("company"), h.Delete)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", w.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ApplicationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestApplicationHandler_Create_JSON(t *testing.T) {
	mock := &mockApplicationService{
		createResult: &dto.ApplicationResponse{ID: "app-1", Status: "pending"},
	}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/applications", jsonBody(dto.CreateApplicationRequest{
		InternshipID: "0b1f1d0a-9f48-4be0-8e3d-2f1f4f9b6a01",
		CoverLetter:  "求职信",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/applications", setAuth("student"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if mock.gotCVCopy != nil {
		t.Error("JSON 投递不应携带简历副本")
	}
}

func TestApplicationHandler_Create_MultipartWithCV(t *testing.T) {
	mock := &mockApplicationService{
		createResult: &dto.ApplicationResponse{ID: "app-1", Status: "pending"},
	}
	h := NewApplicationHandler(mock)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("internship_id", "0b1f1d0a-9f48-4be0-8e3d-2f1f4f9b6a01")
	mw.WriteField("cover_letter", "附简历")
	part, _ := mw.CreateFormFile("cv_copy", "resume.pdf")
	part.Write([]byte("%PDF fake"))
	mw.Close()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/applications", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	r := gin.New()
	r.POST("/applications", setAuth("student"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	if mock.gotCVCopy == nil {
		t.Error("multipart 投递应提取 cv_copy 文件")
	}
}

func TestApplicationHandler_Create_Duplicate(t *testing.T) {
	mock := &mockApplicationService{createErr: service.ErrAlreadyApplied}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/applications", jsonBody(dto.CreateApplicationRequest{
		InternshipID: "0b1f1d0a-9f48-4be0-8e3d-2f1f4f9b6a01",
		CoverLetter:  "重复投递",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/applications", setAuth("student"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14002 {
		t.Errorf("expected error code 14002, got %d", resp.Code)
	}
}

func TestApplicationHandler_Create_BadInternshipID(t *testing.T) {
	mock := &mockApplicationService{}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/applications", jsonBody(dto.CreateApplicationRequest{
		InternshipID: "not-a-uuid",
		CoverLetter:  "求职信",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/applications", setAuth("student"), h.Create)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("非 UUID 岗位 ID 应 400, got %d", w.Code)
	}
}

func TestApplicationHandler_UpdateStatus_TerminalFrozen(t *testing.T) {
	mock := &mockApplicationService{updateErr: service.ErrStatusFinal}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("PATCH", "/applications/app-1", jsonBody(dto.UpdateApplicationStatusRequest{
		Status: "pending",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.PATCH("/applications/:id", setAuth("company"), h.UpdateStatus)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 14006 {
		t.Errorf("expected error code 14006, got %d", resp.Code)
	}
}

func TestApplicationHandler_InternshipApplications_NotOwned(t *testing.T) {
	mock := &mockApplicationService{byIntErr: service.ErrInternshipNotFound}
	h := NewApplicationHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/applications/internship-1/internship-applications", nil)

	r := gin.New()
	r.GET("/applications/:id/internship-applications", setAuth("company"), h.InternshipApplications)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("他人岗位应 404, got %d", w.Code)
	}
	resp := parseResponse(w)
	if resp.Code != 13001 {
		t.Errorf("expected error code 13001, got %d", resp.Code)
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ApplicantsExcel_Headers(t *testing.T) {
	mock := &mockExportService{
		excelBuf:      bytes.NewBufferString("xlsx-bytes"),
		excelFilename: "applicants_abc_20260828.xlsx",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/internships/internship-1/applications.xlsx", nil)

	r := gin.New()
	r.GET("/export/internships/:id/applications.xlsx", setAuth("company"), h.ApplicantsExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "applicants_abc_20260828.xlsx") {
		t.Errorf("Content-Disposition 应包含文件名，实际=%s", cd)
	}
	ct := w.Header().Get("Content-Type")
	if !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type 应为 xlsx MIME，实际=%s", ct)
	}
	if w.Body.String() != "xlsx-bytes" {
		t.Error("响应体应为导出内容")
	}
}

func TestExportHandler_ApplicantsExcel_NoApplications(t *testing.T) {
	mock := &mockExportService{excelErr: service.ErrExportNoApplications}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/internships/internship-1/applications.xlsx", nil)

	r := gin.New()
	r.GET("/export/internships/:id/applications.xlsx", setAuth("company"), h.ApplicantsExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestExportHandler_DeadlineCalendar_Headers(t *testing.T) {
	mock := &mockExportService{
		calBuf:      bytes.NewBufferString("BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"),
		calFilename: "deadlines_20260828.ics",
	}
	h := NewExportHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/export/applications/calendar.ics", nil)

	r := gin.New()
	r.GET("/export/applications/calendar.ics", setAuth("student"), h.DeadlineCalendar)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Header().Get("Content-Type"), "text/calendar") {
		t.Errorf("Content-Type 应为 text/calendar，实际=%s", w.Header().Get("Content-Type"))
	}
	if !strings.Contains(w.Body.String(), "BEGIN:VCALENDAR") {
		t.Error("响应体应为 iCalendar 内容")
	}
}
