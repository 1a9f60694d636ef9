package service

import (
	"github.com/commerce-next/internal/repository"

	"gorm.io/gorm"
)

// InventoryService 库存台账服务，所有库存变更必须经由本服务。
type InventoryService struct {
	itemRepo repository.ItemRepository
}

// NewInventoryService 创建库存服务
func NewInventoryService(itemRepo repository.ItemRepository) *InventoryService {
	return &InventoryService{itemRepo: itemRepo}
}

// WithTx 绑定事务
func (s *InventoryService) WithTx(tx *gorm.DB) *InventoryService {
	if tx == nil {
		return s
	}
	return &InventoryService{itemRepo: s.itemRepo.WithTx(tx)}
}

// CheckAndSubtract 校验并扣减库存。
// 商品不存在或已下架返回 ErrItemNotFound，库存不足返回 ErrStockInsufficient。
// 扣减通过条件 UPDATE 完成，并发下单对同一商品天然串行。
func (s *InventoryService) CheckAndSubtract(itemID uint, quantity int) error {
	if quantity <= 0 {
		return ErrStockInsufficient
	}
	item, err := s.itemRepo.GetActiveByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}
	rows, err := s.itemRepo.SubtractStock(itemID, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrStockInsufficient
	}
	return nil
}

// Add 回补库存。商品不存在返回 ErrItemNotFound。
func (s *InventoryService) Add(itemID uint, quantity int) error {
	if quantity <= 0 {
		return nil
	}
	rows, err := s.itemRepo.AddStock(itemID, quantity)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrItemNotFound
	}
	return nil
}

// EnsureActiveExist 批量校验商品集合中存在上架商品，作为库存变更前的预检。
func (s *InventoryService) EnsureActiveExist(itemIDs []uint) error {
	items, err := s.itemRepo.ListActiveByIDs(itemIDs)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return ErrItemNotFound
	}
	return nil
}
