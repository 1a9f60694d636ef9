package models

import (
	"time"

	"gorm.io/gorm"
)

// Member 会员表
type Member struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                 // 主键
	UserID             string         `gorm:"uniqueIndex;not null" json:"user_id"`  // 登录账号
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash       string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	Name               string         `gorm:"not null" json:"name"`                 // 姓名
	City               string         `gorm:"default:''" json:"city"`               // 收货城市
	Street             string         `gorm:"default:''" json:"street"`             // 收货街道
	Zipcode            string         `gorm:"type:varchar(20)" json:"zipcode"`      // 邮编
	Status             string         `gorm:"default:'active';index" json:"status"` // 账号状态
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`          // Token 版本（用于全量失效）
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                       // 该时间点前签发的 Token 失效
	LastLoginAt        *time.Time     `json:"last_login_at"`                        // 最后登录时间
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Member) TableName() string {
	return "members"
}
