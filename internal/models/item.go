package models

import (
	"time"

	"gorm.io/gorm"
)

// Item 商品表
type Item struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name          string         `gorm:"not null;index" json:"name"`                                // 商品名称
	Description   string         `gorm:"type:text" json:"description"`                              // 商品描述
	SalePrice     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"sale_price"`   // 销售价
	SupplyPrice   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"supply_price"` // 供货价
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`                  // 库存数量（恒为非负）
	Status        string         `gorm:"default:'active';index" json:"status"`                      // 商品状态
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
