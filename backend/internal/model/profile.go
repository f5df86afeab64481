package model

import "time"

// Profile 角色枚举
const (
	RoleStudent = "student"
	RoleCompany = "company"
)

// ValidRole 判断角色取值是否合法
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleCompany
}

// Profile 个人资料表 — 对应 profiles
// 每个 User 恰好一条，注册时与 User 同事务创建；角色创建后不可变
type Profile struct {
	ProfileID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    string  `gorm:"type:uuid;not null;uniqueIndex:uq_profiles_user" json:"-"`
	Role      string  `gorm:"type:varchar(10);not null;default:'student'"    json:"role"`
	Bio       *string `gorm:"type:text"                                      json:"bio,omitempty"`
	Skills    *string `gorm:"type:text"                                      json:"skills,omitempty"` // 逗号分隔
	CVPath    *string `gorm:"type:varchar(512);column:cv_path"               json:"cv,omitempty"`

	// 企业字段
	CompanyName *string `gorm:"type:varchar(255)"                  json:"company_name,omitempty"`
	LogoPath    *string `gorm:"type:varchar(512);column:logo_path" json:"logo,omitempty"`

	// 学生字段
	Phone          *string `gorm:"type:varchar(15)"  json:"phone,omitempty"`
	College        *string `gorm:"type:varchar(255)" json:"college,omitempty"`
	Degree         *string `gorm:"type:varchar(100)" json:"degree,omitempty"`
	GraduationYear *int    `gorm:""                  json:"graduation_year,omitempty"`
	Github         *string `gorm:"type:varchar(512)" json:"github,omitempty"`
	Linkedin       *string `gorm:"type:varchar(512)" json:"linkedin,omitempty"`
	Portfolio      *string `gorm:"type:varchar(512)" json:"portfolio,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	// 关联
	User *User `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Profile) TableName() string { return "profiles" }
