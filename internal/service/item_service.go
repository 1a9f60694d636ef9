package service

import (
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/repository"
)

// ItemService 商品查询服务
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService 创建商品服务
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// List 分页查询上架商品
func (s *ItemService) List(filter repository.ItemListFilter) ([]models.Item, int64, error) {
	filter.OnlyActive = true
	return s.itemRepo.List(filter)
}

// Get 获取上架商品详情
func (s *ItemService) Get(id uint) (*models.Item, error) {
	if id == 0 {
		return nil, ErrItemNotFound
	}
	item, err := s.itemRepo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
