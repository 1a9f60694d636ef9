package public

import (
	"strconv"

	"github.com/commerce-next/internal/http/response"
	"github.com/commerce-next/internal/models"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车项请求
type CartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}

// CartItemView 购物车项响应
type CartItemView struct {
	ID       uint         `json:"id"`
	ItemID   uint         `json:"item_id"`
	ItemName string       `json:"item_name"`
	Quantity int          `json:"quantity"`
	Price    models.Money `json:"price"`
}

func buildCartItemView(item models.CartItem) CartItemView {
	view := CartItemView{
		ID:       item.ID,
		ItemID:   item.ItemID,
		Quantity: item.UsedQuantity,
	}
	if item.Item != nil {
		view.ItemName = item.Item.Name
		view.Price = item.Item.SalePrice
	}
	return view
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListCart(memberID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to fetch cart")
		return
	}

	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		views = append(views, buildCartItemView(item))
	}
	response.Success(c, gin.H{"items": views})
}

// AddCartItem 添加购物车项
func (h *Handler) AddCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	item, err := h.CartService.AddToCart(memberID, req.ItemID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, buildCartItemView(*item))
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "invalid item id", nil)
		return
	}

	if err := h.CartService.RemoveFromCart(memberID, uint(itemID)); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	memberID, ok := getMemberID(c)
	if !ok {
		return
	}
	if err := h.CartService.ClearCart(memberID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to update cart")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
