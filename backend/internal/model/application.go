package model

import "time"

// Application 状态枚举
const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
	StatusAccepted    = "accepted"
)

// ValidStatus 判断状态取值是否合法
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// TerminalStatus 终态（accepted / rejected）不允许再次变更
func TerminalStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// Application 投递申请表 — 对应 applications
// (internship_id, student_id) 唯一约束是防重复投递的唯一权威防线
type Application struct {
	ApplicationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InternshipID  string    `gorm:"type:uuid;not null;uniqueIndex:uq_applications_internship_student,priority:1" json:"internship_id"`
	StudentID     string    `gorm:"type:uuid;not null;uniqueIndex:uq_applications_internship_student,priority:2" json:"-"`
	CoverLetter   string    `gorm:"type:text;not null"                 json:"cover_letter"`
	CVCopyPath    *string   `gorm:"type:varchar(512);column:cv_copy_path" json:"cv_copy,omitempty"`
	Status        string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	AppliedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;column:applied_at" json:"applied_at"`
	UpdatedAt     time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Internship *Internship `gorm:"foreignKey:InternshipID;references:InternshipID" json:"internship,omitempty"`
	Student    *Profile    `gorm:"foreignKey:StudentID;references:ProfileID"       json:"student,omitempty"`
}

// TableName 指定表名
func (Application) TableName() string { return "applications" }
