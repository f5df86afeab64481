package model

import "time"

// User 账号表 — 对应 users
// 身份信息与凭据；角色等业务属性挂在一对一的 Profile 上
type User struct {
	UserID       string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_users_username" json:"username"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"    json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null"                     json:"-"`
	FirstName    string    `gorm:"type:varchar(150);not null;default:''"          json:"first_name"`
	LastName     string    `gorm:"type:varchar(150);not null;default:''"          json:"last_name"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`

	// 关联
	Profile *Profile `gorm:"foreignKey:UserID;references:UserID" json:"profile,omitempty"`
}

// TableName 指定表名
func (User) TableName() string { return "users" }
