package models

import (
	"time"

	"github.com/commerce-next/internal/constants"

	"gorm.io/gorm"
)

// Delivery 配送表（地址为下单时会员地址的快照）
type Delivery struct {
	ID        uint           `gorm:"primarykey" json:"id"`                 // 主键
	OrderID   uint           `gorm:"uniqueIndex;not null" json:"order_id"` // 订单ID
	MemberID  uint           `gorm:"index;not null" json:"member_id"`      // 会员ID
	City      string         `gorm:"default:''" json:"city"`               // 收货城市
	Street    string         `gorm:"default:''" json:"street"`             // 收货街道
	Zipcode   string         `gorm:"type:varchar(20)" json:"zipcode"`      // 邮编
	Status    string         `gorm:"index;not null" json:"status"`         // 配送状态
	CreatedAt time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间
}

// TableName 指定表名
func (Delivery) TableName() string {
	return "deliveries"
}

// Cancelable 是否仍处于可取消订单的配送阶段
func (d *Delivery) Cancelable() bool {
	if d == nil {
		return true
	}
	return d.Status == constants.DeliveryStatusStandBy
}
