package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/logger"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/queue"
	"github.com/commerce-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService 订单工作流服务，负责下单与取消两条事务路径。
type OrderService struct {
	orderRepo    repository.OrderRepository
	cartRepo     repository.CartRepository
	memberRepo   *repository.GormMemberRepository
	deliveryRepo repository.DeliveryRepository
	inventory    *InventoryService
	queueClient  *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, memberRepo *repository.GormMemberRepository, deliveryRepo repository.DeliveryRepository, inventory *InventoryService, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		cartRepo:     cartRepo,
		memberRepo:   memberRepo,
		deliveryRepo: deliveryRepo,
		inventory:    inventory,
		queueClient:  queueClient,
	}
}

// PlaceOrder 从购物车下单。
// 整个流程运行在单个事务内：库存扣减、订单与订单项创建、
// 购物车项失效、配送记录创建要么全部生效，要么全部回滚。
func (s *OrderService) PlaceOrder(memberID uint, cartItemIDs []uint) (*models.Order, error) {
	if memberID == 0 {
		return nil, ErrMemberNotFound
	}

	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		memberRepo := s.memberRepo.WithTx(tx)
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)
		deliveryRepo := s.deliveryRepo.WithTx(tx)
		inventory := s.inventory.WithTx(tx)

		member, err := memberRepo.GetByID(memberID)
		if err != nil {
			return err
		}
		if member == nil {
			return ErrMemberNotFound
		}
		if !strings.EqualFold(member.Status, constants.MemberStatusActive) {
			return ErrMemberDeactivated
		}

		lines, err := ResolveForOrder(cartRepo, cartItemIDs, memberID)
		if err != nil {
			return err
		}

		itemIDs := distinctItemIDs(lines)
		if err := inventory.EnsureActiveExist(itemIDs); err != nil {
			return err
		}
		for _, line := range lines {
			if err := inventory.CheckAndSubtract(line.ItemID, line.UsedQuantity); err != nil {
				return err
			}
		}

		now := time.Now()
		order = &models.Order{
			OrderNo:    generateOrderNo(),
			MemberID:   memberID,
			Name:       buildOrderName(lines),
			Status:     constants.OrderStatusPlaced,
			TotalPrice: calculateTotalPrice(lines),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		orderItems := buildOrderItems(lines)
		if err := orderRepo.Create(order, orderItems); err != nil {
			return ErrOrderCreateFailed
		}
		order.Items = orderItems

		lineIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			lineIDs = append(lineIDs, line.ID)
		}
		rows, err := cartRepo.DeactivateByIDs(lineIDs)
		if err != nil {
			return err
		}
		// 行数不足说明有购物车项被并发订单抢先消费
		if rows != int64(len(lineIDs)) {
			return ErrCartMismatch
		}

		delivery := &models.Delivery{
			OrderID:  order.ID,
			MemberID: member.ID,
			City:     member.City,
			Street:   member.Street,
			Zipcode:  member.Zipcode,
			Status:   constants.DeliveryStatusStandBy,
		}
		if err := deliveryRepo.Create(delivery); err != nil {
			return err
		}
		order.Delivery = delivery
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyOrderStatus(order.ID, constants.OrderStatusPlaced)
	return order, nil
}

// CancelOrder 取消订单并回补库存。
// 订单行加锁读取，取消、订单项失效、库存回补在同一事务内完成，
// 重复取消只会回补一次。
func (s *OrderService) CancelOrder(orderID, memberID uint) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}

	var order *models.Order
	err := models.DB.Transaction(func(tx *gorm.DB) error {
		orderRepo := s.orderRepo.WithTx(tx)
		inventory := s.inventory.WithTx(tx)

		var err error
		order, err = orderRepo.GetByIDAndMemberForUpdate(orderID, memberID)
		if err != nil {
			return ErrOrderFetchFailed
		}
		if order == nil {
			return ErrOrderNotFound
		}
		if order.Status == constants.OrderStatusCanceled {
			return ErrOrderAlreadyCanceled
		}
		if !order.Delivery.Cancelable() {
			return ErrOrderCancelNotAllowed
		}

		now := time.Now()
		updates := map[string]interface{}{
			"canceled_at": now,
			"updated_at":  now,
		}
		if err := orderRepo.UpdateStatus(order.ID, constants.OrderStatusCanceled, updates); err != nil {
			return ErrOrderUpdateFailed
		}

		items, err := orderRepo.ListActiveItems(order.ID)
		if err != nil {
			return err
		}
		itemIDs := make([]uint, 0, len(items))
		for _, item := range items {
			itemIDs = append(itemIDs, item.ItemID)
		}
		if err := inventory.EnsureActiveExist(itemIDs); err != nil {
			return err
		}
		if _, err := orderRepo.DeactivateItems(order.ID); err != nil {
			return err
		}
		for _, item := range items {
			if err := inventory.Add(item.ItemID, item.UsedQuantity); err != nil {
				return err
			}
		}

		order.Status = constants.OrderStatusCanceled
		order.CanceledAt = &now
		order.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyOrderStatus(order.ID, constants.OrderStatusCanceled)
	return order, nil
}

// GetOrder 获取会员订单详情
func (s *OrderService) GetOrder(orderID, memberID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndMember(orderID, memberID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListOrders 分页查询会员订单
func (s *OrderService) ListOrders(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	orders, total, err := s.orderRepo.ListByMember(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

func (s *OrderService) notifyOrderStatus(orderID uint, status string) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: orderID,
		Status:  status,
	})
	if err != nil {
		logger.Warnw("order_enqueue_status_notify_failed",
			"order_id", orderID,
			"status", status,
			"error", err,
		)
	}
}

// buildOrderName 生成订单展示名称。
// 单条为商品名，多条为“首个商品名 외 N건”。
func buildOrderName(lines []models.CartItem) string {
	if len(lines) == 0 {
		return ""
	}
	first := ""
	if lines[0].Item != nil {
		first = lines[0].Item.Name
	}
	if len(lines) == 1 {
		return first
	}
	return fmt.Sprintf("%s 외 %d건", first, len(lines)-1)
}

// calculateTotalPrice 计算订单总价：逐行累加商品销售价，不乘以数量。
func calculateTotalPrice(lines []models.CartItem) models.Money {
	total := models.NewMoneyFromInt(0)
	for _, line := range lines {
		if line.Item == nil {
			continue
		}
		total = total.Add(line.Item.SalePrice)
	}
	return total
}

func buildOrderItems(lines []models.CartItem) []models.OrderItem {
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := models.OrderItem{
			ItemID:           line.ItemID,
			UsedQuantity:     line.UsedQuantity,
			PurchaseQuantity: line.PurchaseQuantity,
			Activated:        true,
		}
		if line.Item != nil {
			item.ItemName = line.Item.Name
			item.SalePrice = line.Item.SalePrice
			item.SupplyPrice = line.Item.SupplyPrice
		}
		items = append(items, item)
	}
	return items
}

func distinctItemIDs(lines []models.CartItem) []uint {
	seen := make(map[uint]bool, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		if seen[line.ItemID] {
			continue
		}
		seen[line.ItemID] = true
		ids = append(ids, line.ItemID)
	}
	return ids
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("CM%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteByte('0')
			continue
		}
		b.WriteString(n.String())
	}
	return b.String()
}
