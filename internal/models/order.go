package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID         uint           `gorm:"primarykey" json:"id"`                                     // 主键
	OrderNo    string         `gorm:"uniqueIndex;not null" json:"order_no"`                     // 订单编号
	MemberID   uint           `gorm:"index;not null" json:"member_id"`                          // 会员ID
	Name       string         `gorm:"not null" json:"name"`                                     // 订单展示名称
	Status     string         `gorm:"index;not null" json:"status"`                             // 订单状态
	TotalPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 订单总价
	CanceledAt *time.Time     `gorm:"index" json:"canceled_at"`                                 // 取消时间
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt  time.Time      `gorm:"index" json:"updated_at"`                                  // 更新时间
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`                                           // 软删除时间

	// 关联
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`    // 订单项
	Delivery *Delivery   `gorm:"foreignKey:OrderID" json:"delivery,omitempty"` // 配送记录
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
