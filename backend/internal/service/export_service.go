package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"intern-portal/backend/internal/model"
	"intern-portal/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoApplications = errors.New("该岗位暂无投递记录")
	ErrExportGenerateFail   = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 企业侧：单个岗位的投递人名单导出为 Excel (.xlsx)
//   - 学生侧：已投递岗位的截止日期导出为 iCalendar (.ics)
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置响应头后写入 Response
type ExportService interface {
	// ApplicantsExcel 导出岗位投递人名单，仅岗位发布者可用
	ApplicantsExcel(ctx context.Context, internshipID, posterProfileID string) (*bytes.Buffer, string, error)
	// DeadlineCalendar 导出学生已投递岗位的截止日期日历
	DeadlineCalendar(ctx context.Context, studentProfileID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ════════════════════ ApplicantsExcel ════════════════════
//
// Excel 格式：单 Sheet，表头
// 姓名 | 用户名 | 邮箱 | 院校 | 学位 | 状态 | 投递时间

func (s *exportService) ApplicantsExcel(ctx context.Context, internshipID, posterProfileID string) (*bytes.Buffer, string, error) {
	internship, err := s.repo.Internship.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInternshipNotFound
		}
		s.logger.Error("查询岗位失败", zap.Error(err))
		return nil, "", err
	}
	if internship.PosterID != posterProfileID {
		return nil, "", ErrInternshipNotFound
	}

	applications, _, err := s.repo.Application.ListByInternship(ctx, internshipID, 0, -1)
	if err != nil {
		s.logger.Error("查询岗位投递失败", zap.Error(err))
		return nil, "", err
	}
	if len(applications) == 0 {
		return nil, "", ErrExportNoApplications
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"姓名", "用户名", "邮箱", "院校", "学位", "状态", "投递时间"}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, "", ErrExportGenerateFail
		}
		f.SetCellValue(sheet, cell, h)
	}

	for row, app := range applications {
		values := applicantRow(&app)
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, "", ErrExportGenerateFail
			}
			f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("applicants_%s_%s.xlsx", internshipID[:8], time.Now().Format("20060102"))
	return buf, filename, nil
}

// applicantRow 单条投递的导出行
func applicantRow(app *model.Application) []interface{} {
	var name, username, email, college, degree string
	if app.Student != nil {
		if app.Student.User != nil {
			u := app.Student.User
			name = u.FirstName
			if u.LastName != "" {
				if name != "" {
					name += " "
				}
				name += u.LastName
			}
			username = u.Username
			email = u.Email
		}
		if app.Student.College != nil {
			college = *app.Student.College
		}
		if app.Student.Degree != nil {
			degree = *app.Student.Degree
		}
	}
	return []interface{}{
		name, username, email, college, degree,
		app.Status, app.AppliedAt.Format("2006-01-02 15:04"),
	}
}

// ════════════════════ DeadlineCalendar ════════════════════
//
// 每条投递生成一个全天事件，DTSTART 为岗位截止日

func (s *exportService) DeadlineCalendar(ctx context.Context, studentProfileID string) (*bytes.Buffer, string, error) {
	applications, _, err := s.repo.Application.ListByStudent(ctx, studentProfileID, 0, -1)
	if err != nil {
		s.logger.Error("查询我的投递失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//intern-portal//deadline-calendar//CN")

	now := time.Now()
	for i := range applications {
		app := &applications[i]
		if app.Internship == nil {
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("application-%s@intern-portal", app.ApplicationID))
		event.SetDtStampTime(now)
		event.SetAllDayStartAt(app.Internship.LastDate)
		event.SetAllDayEndAt(app.Internship.LastDate.AddDate(0, 0, 1))
		event.SetSummary(fmt.Sprintf("%s 投递截止", app.Internship.Title))
		event.SetLocation(app.Internship.Location)
		event.SetDescription(fmt.Sprintf("投递状态: %s", app.Status))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("deadlines_%s.ics", now.Format("20060102"))
	return buf, filename, nil
}
