package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderItem 订单项表（下单时的商品快照）
type OrderItem struct {
	ID               uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderID          uint           `gorm:"index;not null" json:"order_id"`                            // 订单ID
	ItemID           uint           `gorm:"index;not null" json:"item_id"`                             // 商品ID
	ItemName         string         `gorm:"not null" json:"item_name"`                                 // 商品名称快照
	SalePrice        Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sale_price"`   // 销售价快照
	SupplyPrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"supply_price"` // 供货价快照
	UsedQuantity     int            `gorm:"not null" json:"used_quantity"`                             // 下单数量
	PurchaseQuantity int            `gorm:"not null" json:"purchase_quantity"`                         // 原购物车数量
	Activated        bool           `gorm:"default:true;index" json:"activated"`                       // 是否有效（取消回补库存后置为 false）
	CreatedAt        time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt        time.Time      `gorm:"index" json:"updated_at"`                                   // 更新时间
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
