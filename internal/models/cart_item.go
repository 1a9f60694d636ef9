package models

import (
	"time"

	"gorm.io/gorm"
)

// CartItem 购物车项
type CartItem struct {
	ID               uint           `gorm:"primarykey" json:"id"`                       // 主键
	MemberID         uint           `gorm:"not null;index" json:"member_id"`            // 会员ID
	ItemID           uint           `gorm:"not null;index" json:"item_id"`              // 商品ID
	UsedQuantity     int            `gorm:"not null" json:"used_quantity"`              // 本次下单数量
	PurchaseQuantity int            `gorm:"not null" json:"purchase_quantity"`          // 加入购物车时的数量
	Activated        bool           `gorm:"default:true;index" json:"activated"`        // 是否有效（被订单消费后置为 false）
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                    // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                    // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
