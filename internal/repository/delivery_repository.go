package repository

import (
	"errors"

	"github.com/commerce-next/internal/models"

	"gorm.io/gorm"
)

// DeliveryRepository 配送数据访问接口
type DeliveryRepository interface {
	Create(delivery *models.Delivery) error
	GetByOrderID(orderID uint) (*models.Delivery, error)
	UpdateStatus(id uint, status string) error
	WithTx(tx *gorm.DB) DeliveryRepository
}

// GormDeliveryRepository GORM 实现
type GormDeliveryRepository struct {
	db *gorm.DB
}

// NewDeliveryRepository 创建配送仓库
func NewDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{db: db}
}

// WithTx 绑定事务
func (r *GormDeliveryRepository) WithTx(tx *gorm.DB) DeliveryRepository {
	if tx == nil {
		return r
	}
	return &GormDeliveryRepository{db: tx}
}

// Create 创建配送记录
func (r *GormDeliveryRepository) Create(delivery *models.Delivery) error {
	return r.db.Create(delivery).Error
}

// GetByOrderID 根据订单 ID 获取配送记录
func (r *GormDeliveryRepository) GetByOrderID(orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	if err := r.db.Where("order_id = ?", orderID).First(&delivery).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

// UpdateStatus 更新配送状态
func (r *GormDeliveryRepository) UpdateStatus(id uint, status string) error {
	return r.db.Model(&models.Delivery{}).Where("id = ?", id).Update("status", status).Error
}
