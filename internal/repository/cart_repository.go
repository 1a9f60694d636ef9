package repository

import (
	"errors"

	"github.com/commerce-next/internal/models"

	"gorm.io/gorm"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	ListByMember(memberID uint) ([]models.CartItem, error)
	ListActiveByIDsAndMember(ids []uint, memberID uint) ([]models.CartItem, error)
	Upsert(item *models.CartItem) error
	DeleteByMemberAndItem(memberID, itemID uint) error
	ClearByMember(memberID uint) error
	DeactivateByIDs(ids []uint) (int64, error)
	WithTx(tx *gorm.DB) CartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// ListByMember 获取会员的有效购物车项
func (r *GormCartRepository) ListByMember(memberID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.Preload("Item").
		Where("member_id = ? AND activated = ?", memberID, true).
		Order("updated_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveByIDsAndMember 按 ID 集合获取会员的有效购物车项
func (r *GormCartRepository) ListActiveByIDsAndMember(ids []uint, memberID uint) ([]models.CartItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.CartItem
	err := r.db.Preload("Item").
		Where("id IN ? AND member_id = ? AND activated = ?", ids, memberID, true).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Upsert 添加或更新购物车项
func (r *GormCartRepository) Upsert(item *models.CartItem) error {
	if item == nil {
		return nil
	}
	var existing models.CartItem
	err := r.db.Where("member_id = ? AND item_id = ? AND activated = ?", item.MemberID, item.ItemID, true).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(item).Error
	}
	if err != nil {
		return err
	}
	updates := map[string]interface{}{
		"used_quantity":     item.UsedQuantity,
		"purchase_quantity": item.PurchaseQuantity,
	}
	if err := r.db.Model(&existing).Updates(updates).Error; err != nil {
		return err
	}
	item.ID = existing.ID
	return nil
}

// DeleteByMemberAndItem 删除购物车项
func (r *GormCartRepository) DeleteByMemberAndItem(memberID, itemID uint) error {
	return r.db.Where("member_id = ? AND item_id = ?", memberID, itemID).Delete(&models.CartItem{}).Error
}

// ClearByMember 清空购物车
func (r *GormCartRepository) ClearByMember(memberID uint) error {
	return r.db.Where("member_id = ?", memberID).Delete(&models.CartItem{}).Error
}

// DeactivateByIDs 将购物车项置为无效，返回受影响行数。
// 仅命中仍有效的行，保证同一购物车项不会被两笔订单消费。
func (r *GormCartRepository) DeactivateByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.CartItem{}).
		Where("id IN ? AND activated = ?", ids, true).
		Update("activated", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
