package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// 文件上传校验与落盘。
// 校验规则与数据模型约定一致：简历 5MB / PDF、Word；图片 2MB / 常见图片格式。

const (
	MaxCVSize    = 5 << 20 // 5MB
	MaxImageSize = 2 << 20 // 2MB
)

var (
	cvExtensions    = []string{".pdf", ".doc", ".docx"}
	imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	cvMimeTypes = []string{
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	}
	imageMimeTypes = []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	}
)

// ValidationError 字段级校验错误，Handler 层直接作为 400 details 返回
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidateCV 校验简历文件（大小 + 扩展名 + 声明的 MIME 类型）
func ValidateCV(field string, fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}
	if fh.Size > MaxCVSize {
		return &ValidationError{Field: field, Reason: "文件大小不能超过 5MB"}
	}
	if !extAllowed(fh.Filename, cvExtensions) {
		return &ValidationError{Field: field, Reason: "不支持的文件格式，仅允许: " + strings.Join(cvExtensions, ", ")}
	}
	if !mimeAllowed(fh, cvMimeTypes) {
		return &ValidationError{Field: field, Reason: "文件类型必须为 PDF 或 Word 文档"}
	}
	return nil
}

// ValidateImage 校验图片文件（大小 + 扩展名 + 声明的 MIME 类型）
func ValidateImage(field string, fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}
	if fh.Size > MaxImageSize {
		return &ValidationError{Field: field, Reason: "图片大小不能超过 2MB"}
	}
	if !extAllowed(fh.Filename, imageExtensions) {
		return &ValidationError{Field: field, Reason: "不支持的图片格式，仅允许: " + strings.Join(imageExtensions, ", ")}
	}
	if !mimeAllowed(fh, imageMimeTypes) {
		return &ValidationError{Field: field, Reason: "图片类型必须为 JPEG、PNG、GIF 或 WebP"}
	}
	return nil
}

func extAllowed(filename string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// mimeAllowed 仅在客户端声明了 Content-Type 时校验；未声明放行（以扩展名为准）
func mimeAllowed(fh *multipart.FileHeader, allowed []string) bool {
	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		return true
	}
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	for _, a := range allowed {
		if ct == a {
			return true
		}
	}
	return false
}

// Store 上传文件落盘存储
// 目录布局: <baseDir>/<subDir>/<uuid><ext>，返回相对路径用于持久化与 /uploads 静态访问
type Store struct {
	baseDir string
}

// NewStore 创建存储并保证基础目录存在
func NewStore(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("创建上传目录失败: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Save 将上传文件写入 subDir，文件名使用 uuid 防止冲突与路径注入
func (s *Store) Save(fh *multipart.FileHeader, subDir string) (string, error) {
	dir := filepath.Join(s.baseDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("创建目录失败: %w", err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	dst := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("写入文件失败: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("写入文件失败: %w", err)
	}

	return filepath.ToSlash(filepath.Join(subDir, name)), nil
}

// Remove 删除已落盘文件（路径为 Save 返回的相对路径），文件不存在时不报错
func (s *Store) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
