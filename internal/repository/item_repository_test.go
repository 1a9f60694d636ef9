package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupItemRepositoryTest(t *testing.T, name string) (*GormItemRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewItemRepository(db), db
}

func seedItem(t *testing.T, db *gorm.DB, name string, stock int) *models.Item {
	t.Helper()
	item := &models.Item{
		Name:          name,
		SalePrice:     models.NewMoneyFromInt(10),
		SupplyPrice:   models.NewMoneyFromInt(5),
		StockQuantity: stock,
		Status:        constants.ItemStatusActive,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("create item failed: %v", err)
	}
	return item
}

func TestSubtractStockRowsAffected(t *testing.T) {
	repo, db := setupItemRepositoryTest(t, "repo_subtract")
	item := seedItem(t, db, "Keyboard", 5)

	rows, err := repo.SubtractStock(item.ID, 5)
	if err != nil {
		t.Fatalf("SubtractStock error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	// 库存为 0 时条件不成立，受影响行数为 0
	rows, err = repo.SubtractStock(item.ID, 1)
	if err != nil {
		t.Fatalf("SubtractStock error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected on empty stock, got %d", rows)
	}

	var reloaded models.Item
	if err := db.First(&reloaded, item.ID).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if reloaded.StockQuantity != 0 {
		t.Fatalf("expected stock 0, got %d", reloaded.StockQuantity)
	}
}

func TestSubtractStockInvalidParams(t *testing.T) {
	repo, _ := setupItemRepositoryTest(t, "repo_subtract_invalid")
	if _, err := repo.SubtractStock(0, 1); err == nil {
		t.Fatalf("expected error for zero item id")
	}
	if _, err := repo.SubtractStock(1, 0); err == nil {
		t.Fatalf("expected error for zero quantity")
	}
	if _, err := repo.SubtractStock(1, -3); err == nil {
		t.Fatalf("expected error for negative quantity")
	}
}

func TestAddStockRowsAffected(t *testing.T) {
	repo, db := setupItemRepositoryTest(t, "repo_add")
	item := seedItem(t, db, "Keyboard", 2)

	rows, err := repo.AddStock(item.ID, 3)
	if err != nil {
		t.Fatalf("AddStock error: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	rows, err = repo.AddStock(item.ID+100, 3)
	if err != nil {
		t.Fatalf("AddStock error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows affected for unknown item, got %d", rows)
	}

	var reloaded models.Item
	if err := db.First(&reloaded, item.ID).Error; err != nil {
		t.Fatalf("load item failed: %v", err)
	}
	if reloaded.StockQuantity != 5 {
		t.Fatalf("expected stock 5, got %d", reloaded.StockQuantity)
	}
}

func TestGetActiveByIDSkipsDisabled(t *testing.T) {
	repo, db := setupItemRepositoryTest(t, "repo_get_active")
	item := seedItem(t, db, "Keyboard", 2)

	got, err := repo.GetActiveByID(item.ID)
	if err != nil {
		t.Fatalf("GetActiveByID error: %v", err)
	}
	if got == nil {
		t.Fatalf("expected item, got nil")
	}

	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("status", constants.ItemStatusDisabled).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}
	got, err = repo.GetActiveByID(item.ID)
	if err != nil {
		t.Fatalf("GetActiveByID error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for disabled item, got %+v", got)
	}
}

func TestListPagination(t *testing.T) {
	repo, db := setupItemRepositoryTest(t, "repo_list_page")
	for i := 0; i < 5; i++ {
		seedItem(t, db, fmt.Sprintf("Item %d", i), 1)
	}

	items, total, err := repo.List(ItemListFilter{Page: 2, PageSize: 2, OnlyActive: true})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 5 {
		t.Fatalf("expected total 5, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items on page 2, got %d", len(items))
	}
}
