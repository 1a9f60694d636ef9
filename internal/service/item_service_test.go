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

func setupItemServiceTest(t *testing.T, name string) (*ItemService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewItemService(repository.NewItemRepository(db)), db
}

func TestItemListOnlyActive(t *testing.T) {
	svc, db := setupItemServiceTest(t, "item_list_active")
	createTestItem(t, db, "Keyboard", 45, 10)
	disabled := createTestItem(t, db, "Mouse", 25, 10)
	if err := db.Model(&models.Item{}).Where("id = ?", disabled.ID).Update("status", constants.ItemStatusDisabled).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}

	items, total, err := svc.List(repository.ItemListFilter{Page: 1, PageSize: 20})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected only active item, got total=%d len=%d", total, len(items))
	}
	if items[0].Name != "Keyboard" {
		t.Fatalf("unexpected item: %+v", items[0])
	}
}

func TestItemListSearch(t *testing.T) {
	svc, db := setupItemServiceTest(t, "item_list_search")
	createTestItem(t, db, "Mechanical Keyboard", 45, 10)
	createTestItem(t, db, "Mouse", 25, 10)

	items, total, err := svc.List(repository.ItemListFilter{Page: 1, PageSize: 20, Search: "Keyboard"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got total=%d len=%d", total, len(items))
	}
}

func TestItemGet(t *testing.T) {
	svc, db := setupItemServiceTest(t, "item_get")
	item := createTestItem(t, db, "Keyboard", 45, 10)

	got, err := svc.Get(item.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Name != "Keyboard" {
		t.Fatalf("unexpected item: %+v", got)
	}

	if _, err := svc.Get(item.ID + 100); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found, got: %v", err)
	}
	if _, err := svc.Get(0); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found for zero id, got: %v", err)
	}
}

func TestItemGetDisabled(t *testing.T) {
	svc, db := setupItemServiceTest(t, "item_get_disabled")
	item := createTestItem(t, db, "Keyboard", 45, 10)
	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("status", constants.ItemStatusDisabled).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}
	if _, err := svc.Get(item.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found for disabled item, got: %v", err)
	}
}
