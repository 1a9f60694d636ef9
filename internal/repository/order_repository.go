package repository

import (
	"errors"

	"github.com/commerce-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(order *models.Order, items []models.OrderItem) error
	GetByID(id uint) (*models.Order, error)
	GetByIDAndMember(id uint, memberID uint) (*models.Order, error)
	GetByIDAndMemberForUpdate(id uint, memberID uint) (*models.Order, error)
	ListByMember(filter OrderListFilter) ([]models.Order, int64, error)
	UpdateStatus(id uint, status string, updates map[string]interface{}) error
	ListActiveItems(orderID uint) ([]models.OrderItem, error)
	DeactivateItems(orderID uint) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(order *models.Order, items []models.OrderItem) error {
	if err := r.db.Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := r.db.Create(&items).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Preload("Delivery")
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndMember 获取会员订单详情
func (r *GormOrderRepository) GetByIDAndMember(id uint, memberID uint) (*models.Order, error) {
	var order models.Order
	query := r.db.Preload("Items").Preload("Delivery")
	if err := query.Where("id = ? AND member_id = ?", id, memberID).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDAndMemberForUpdate 获取会员订单并加行锁，用于取消流程串行化。
func (r *GormOrderRepository) GetByIDAndMemberForUpdate(id uint, memberID uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND member_id = ?", id, memberID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := r.db.Preload("Items").Preload("Delivery").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByMember 分页查询会员订单
func (r *GormOrderRepository) ListByMember(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{}).Where("member_id = ?", filter.MemberID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	query = applyPagination(query.Order("id desc"), filter.Page, filter.PageSize)
	if err := query.Preload("Items").Preload("Delivery").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 更新订单状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updates map[string]interface{}) error {
	values := map[string]interface{}{"status": status}
	for k, v := range updates {
		values[k] = v
	}
	return r.db.Model(&models.Order{}).Where("id = ?", id).Updates(values).Error
}

// ListActiveItems 获取订单的有效订单项
func (r *GormOrderRepository) ListActiveItems(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Where("order_id = ? AND activated = ?", orderID, true).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeactivateItems 将订单的有效订单项置为无效，返回受影响行数。
// 仅命中仍有效的行，保证取消回补库存只发生一次。
func (r *GormOrderRepository) DeactivateItems(orderID uint) (int64, error) {
	result := r.db.Model(&models.OrderItem{}).
		Where("order_id = ? AND activated = ?", orderID, true).
		Update("activated", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
