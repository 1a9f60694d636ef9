package repository

import (
	"errors"

	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/models"

	"gorm.io/gorm"
)

// ItemRepository 商品数据访问接口
type ItemRepository interface {
	Create(item *models.Item) error
	GetByID(id uint) (*models.Item, error)
	GetActiveByID(id uint) (*models.Item, error)
	List(filter ItemListFilter) ([]models.Item, int64, error)
	ListActiveByIDs(ids []uint) ([]models.Item, error)
	SubtractStock(itemID uint, quantity int) (int64, error)
	AddStock(itemID uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) ItemRepository
}

// GormItemRepository GORM 实现
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建商品仓库
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// WithTx 绑定事务
func (r *GormItemRepository) WithTx(tx *gorm.DB) ItemRepository {
	if tx == nil {
		return r
	}
	return &GormItemRepository{db: tx}
}

// Create 创建商品
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// GetByID 根据 ID 获取商品
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// GetActiveByID 根据 ID 获取上架商品
func (r *GormItemRepository) GetActiveByID(id uint) (*models.Item, error) {
	var item models.Item
	err := r.db.Where("id = ? AND status = ?", id, constants.ItemStatusActive).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// List 分页查询商品列表
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.Item, int64, error) {
	query := r.db.Model(&models.Item{})
	if filter.OnlyActive {
		query = query.Where("status = ?", constants.ItemStatusActive)
	}
	if filter.Search != "" {
		query = query.Where("name LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Item
	query = applyPagination(query.Order("sort_order asc, id desc"), filter.Page, filter.PageSize)
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListActiveByIDs 批量获取上架商品
func (r *GormItemRepository) ListActiveByIDs(ids []uint) ([]models.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []models.Item
	err := r.db.Where("id IN ? AND status = ?", ids, constants.ItemStatusActive).Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// SubtractStock 条件扣减库存，返回受影响行数（0 表示库存不足）
func (r *GormItemRepository) SubtractStock(itemID uint, quantity int) (int64, error) {
	if itemID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock subtract params")
	}
	result := r.db.Model(&models.Item{}).
		Where("id = ? AND stock_quantity >= ?", itemID, quantity).
		Update("stock_quantity", gorm.Expr("stock_quantity - ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// AddStock 回补库存，返回受影响行数（0 表示商品不存在）
func (r *GormItemRepository) AddStock(itemID uint, quantity int) (int64, error) {
	if itemID == 0 || quantity <= 0 {
		return 0, errors.New("invalid stock add params")
	}
	result := r.db.Model(&models.Item{}).
		Where("id = ?", itemID).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
