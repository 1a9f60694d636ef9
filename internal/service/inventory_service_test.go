package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/commerce-next/internal/constants"
	"github.com/commerce-next/internal/models"
	"github.com/commerce-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupInventoryServiceTest(t *testing.T, name string) (*InventoryService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewInventoryService(repository.NewItemRepository(db)), db
}

func TestCheckAndSubtract(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_subtract")
	item := createTestItem(t, db, "Keyboard", 45, 5)

	if err := svc.CheckAndSubtract(item.ID, 3); err != nil {
		t.Fatalf("CheckAndSubtract error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 2 {
		t.Fatalf("expected stock 2, got %d", got)
	}
}

func TestCheckAndSubtractInsufficient(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_insufficient")
	item := createTestItem(t, db, "Keyboard", 45, 2)

	err := svc.CheckAndSubtract(item.ID, 3)
	if !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected insufficient stock, got: %v", err)
	}
	// 条件不满足时不得扣减
	if got := itemStock(t, db, item.ID); got != 2 {
		t.Fatalf("expected stock unchanged, got %d", got)
	}
}

func TestCheckAndSubtractExactStock(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_exact")
	item := createTestItem(t, db, "Keyboard", 45, 3)

	if err := svc.CheckAndSubtract(item.ID, 3); err != nil {
		t.Fatalf("CheckAndSubtract error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 0 {
		t.Fatalf("expected stock 0, got %d", got)
	}
	if err := svc.CheckAndSubtract(item.ID, 1); !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("expected insufficient stock on empty item, got: %v", err)
	}
}

func TestCheckAndSubtractDisabledItem(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_disabled")
	item := createTestItem(t, db, "Keyboard", 45, 5)
	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("status", constants.ItemStatusDisabled).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}

	if err := svc.CheckAndSubtract(item.ID, 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found for disabled item, got: %v", err)
	}
}

func TestAddStock(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_add")
	item := createTestItem(t, db, "Keyboard", 45, 5)

	if err := svc.Add(item.ID, 4); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 9 {
		t.Fatalf("expected stock 9, got %d", got)
	}
}

func TestAddStockUnknownItem(t *testing.T) {
	svc, _ := setupInventoryServiceTest(t, "inventory_add_unknown")
	if err := svc.Add(9999, 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found, got: %v", err)
	}
}

func TestAddStockZeroQuantityNoop(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_add_zero")
	item := createTestItem(t, db, "Keyboard", 45, 5)
	if err := svc.Add(item.ID, 0); err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if got := itemStock(t, db, item.ID); got != 5 {
		t.Fatalf("expected stock unchanged, got %d", got)
	}
}

func TestEnsureActiveExist(t *testing.T) {
	svc, db := setupInventoryServiceTest(t, "inventory_ensure")
	item := createTestItem(t, db, "Keyboard", 45, 5)

	if err := svc.EnsureActiveExist([]uint{item.ID}); err != nil {
		t.Fatalf("EnsureActiveExist error: %v", err)
	}
	if err := svc.EnsureActiveExist([]uint{item.ID + 100}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found, got: %v", err)
	}
	if err := svc.EnsureActiveExist(nil); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found for empty set, got: %v", err)
	}
}
