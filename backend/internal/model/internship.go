package model

import "time"

// Internship 实习岗位表 — 对应 internships
// 由企业 Profile 发布；is_active 为人工开关，与 last_date 无自动联动
type Internship struct {
	InternshipID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PosterID       string    `gorm:"type:uuid;not null;index"           json:"-"`
	Title          string    `gorm:"type:varchar(255);not null"         json:"title"`
	Description    string    `gorm:"type:text;not null"                 json:"description"`
	SkillsRequired string    `gorm:"type:text;not null"                 json:"skills_required"` // 逗号分隔
	Stipend        float64   `gorm:"type:numeric(10,2);not null"        json:"stipend"`         // 月津贴
	Duration       string    `gorm:"type:varchar(100);not null"         json:"duration"`        // 如 "3 months"
	Location       string    `gorm:"type:varchar(255);not null"         json:"location"`
	Remote         bool      `gorm:"not null;default:false"             json:"remote"`
	LastDate       time.Time `gorm:"type:date;not null"                 json:"last_date"` // 投递截止日
	IsActive       bool      `gorm:"not null;default:true"              json:"is_active"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	Poster *Profile `gorm:"foreignKey:PosterID;references:ProfileID" json:"poster,omitempty"`
}

// TableName 指定表名
func (Internship) TableName() string { return "internships" }
