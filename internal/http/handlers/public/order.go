package public

import (
	"strconv"

	handlershared "github.com/commerce-next/internal/http/handlers/shared"
	"github.com/commerce-next/internal/http/response"
	"github.com/commerce-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	CartItemIDs []uint `json:"cart_item_ids" binding:"required,min=1"`
}

// CreateOrder 从购物车下单
func (h *Handler) CreateOrder(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(memberID, req.CartItemIDs)
	if err != nil {
		respondWithMappedError(c, err, placeOrderErrorRules, response.CodeInternal, "failed to create order")
		return
	}
	response.Success(c, order)
}

// CancelOrder 取消订单
func (h *Handler) CancelOrder(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.CancelOrder(uint(orderID), memberID)
	if err != nil {
		respondWithMappedError(c, err, cancelOrderErrorRules, response.CodeInternal, "failed to cancel order")
		return
	}
	response.Success(c, order)
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "invalid order id", nil)
		return
	}

	order, err := h.OrderService.GetOrder(uint(orderID), memberID)
	if err != nil {
		respondWithMappedError(c, err, cancelOrderErrorRules, response.CodeInternal, "failed to fetch order")
		return
	}
	response.Success(c, order)
}

// ListOrders 订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListOrders(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		MemberID: memberID,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list orders", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.BuildPagination(page, pageSize, total))
}
