package public

import (
	"strconv"

	handlershared "github.com/commerce-next/internal/http/handlers/shared"
	"github.com/commerce-next/internal/http/response"
	"github.com/commerce-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListItems 商品列表
func (h *Handler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	items, total, err := h.ItemService.List(repository.ItemListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "failed to list items", err)
		return
	}

	response.SuccessWithPage(c, gin.H{"items": items}, response.BuildPagination(page, pageSize, total))
}

// GetItem 商品详情
func (h *Handler) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid item id", nil)
		return
	}

	item, err := h.ItemService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "failed to fetch item")
		return
	}
	response.Success(c, item)
}
