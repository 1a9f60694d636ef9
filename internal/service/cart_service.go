package service

import (
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) *CartService {
	return &CartService{cartRepo: cartRepo, itemRepo: itemRepo}
}

// ListCart 获取会员购物车
func (s *CartService) ListCart(memberID uint) ([]models.CartItem, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}
	return s.cartRepo.ListByMember(memberID)
}

// AddToCart 添加商品到购物车
func (s *CartService) AddToCart(memberID, itemID uint, quantity int) (*models.CartItem, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}
	if itemID == 0 || quantity <= 0 {
		return nil, ErrCartItemInvalid
	}
	item, err := s.itemRepo.GetActiveByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	cartItem := &models.CartItem{
		MemberID:         memberID,
		ItemID:           itemID,
		UsedQuantity:     quantity,
		PurchaseQuantity: quantity,
		Activated:        true,
	}
	if err := s.cartRepo.Upsert(cartItem); err != nil {
		return nil, err
	}
	cartItem.Item = item
	return cartItem, nil
}

// RemoveFromCart 从购物车移除商品
func (s *CartService) RemoveFromCart(memberID, itemID uint) error {
	if memberID == 0 || itemID == 0 {
		return ErrCartItemInvalid
	}
	return s.cartRepo.DeleteByMemberAndItem(memberID, itemID)
}

// ClearCart 清空购物车
func (s *CartService) ClearCart(memberID uint) error {
	if memberID == 0 {
		return ErrMemberNotFound
	}
	return s.cartRepo.ClearByMember(memberID)
}

// ResolveForOrder 按 ID 集合解析会员待下单的购物车项。
// 解析数量与请求数量不一致说明存在过期、越权或已被消费的购物车项，返回 ErrCartMismatch。
func ResolveForOrder(cartRepo repository.CartRepository, cartItemIDs []uint, memberID uint) ([]models.CartItem, error) {
	ids := dedupeIDs(cartItemIDs)
	if len(ids) == 0 {
		return nil, ErrCartItemInvalid
	}
	lines, err := cartRepo.ListActiveByIDsAndMember(ids, memberID)
	if err != nil {
		return nil, err
	}
	if len(lines) != len(ids) {
		return nil, ErrCartMismatch
	}
	return lines, nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
