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

func setupCartServiceTest(t *testing.T, name string) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Member{}, &models.Item{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartService(repository.NewCartRepository(db), repository.NewItemRepository(db)), db
}

func TestAddToCart(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_add")
	member := createTestMember(t, db, "cart1")
	item := createTestItem(t, db, "Keyboard", 45, 10)

	line, err := svc.AddToCart(member.ID, item.ID, 2)
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if line.UsedQuantity != 2 || line.PurchaseQuantity != 2 {
		t.Fatalf("unexpected quantities: %+v", line)
	}
	if !line.Activated {
		t.Fatalf("expected active cart line")
	}
}

func TestAddToCartUpsertsSameItem(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_upsert")
	member := createTestMember(t, db, "cart2")
	item := createTestItem(t, db, "Keyboard", 45, 10)

	if _, err := svc.AddToCart(member.ID, item.ID, 2); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := svc.AddToCart(member.ID, item.ID, 5); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	var lines []models.CartItem
	if err := db.Where("member_id = ? AND activated = ?", member.ID, true).Find(&lines).Error; err != nil {
		t.Fatalf("load cart lines failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected single cart line for same item, got %d", len(lines))
	}
	if lines[0].UsedQuantity != 5 {
		t.Fatalf("expected quantity 5 after upsert, got %d", lines[0].UsedQuantity)
	}
}

func TestAddToCartDisabledItem(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_disabled_item")
	member := createTestMember(t, db, "cart3")
	item := createTestItem(t, db, "Keyboard", 45, 10)
	if err := db.Model(&models.Item{}).Where("id = ?", item.ID).Update("status", constants.ItemStatusDisabled).Error; err != nil {
		t.Fatalf("disable item failed: %v", err)
	}

	if _, err := svc.AddToCart(member.ID, item.ID, 1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected item not found, got: %v", err)
	}
}

func TestAddToCartInvalidQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_invalid_quantity")
	member := createTestMember(t, db, "cart4")
	item := createTestItem(t, db, "Keyboard", 45, 10)

	if _, err := svc.AddToCart(member.ID, item.ID, 0); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected invalid cart item, got: %v", err)
	}
	if _, err := svc.AddToCart(member.ID, item.ID, -2); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected invalid cart item, got: %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_remove")
	member := createTestMember(t, db, "cart5")
	item := createTestItem(t, db, "Keyboard", 45, 10)
	if _, err := svc.AddToCart(member.ID, item.ID, 1); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	if err := svc.RemoveFromCart(member.ID, item.ID); err != nil {
		t.Fatalf("RemoveFromCart error: %v", err)
	}
	lines, err := svc.ListCart(member.ID)
	if err != nil {
		t.Fatalf("ListCart error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(lines))
	}
}

func TestClearCart(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_clear")
	member := createTestMember(t, db, "cart6")
	keyboard := createTestItem(t, db, "Keyboard", 45, 10)
	mouse := createTestItem(t, db, "Mouse", 25, 10)
	if _, err := svc.AddToCart(member.ID, keyboard.ID, 1); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}
	if _, err := svc.AddToCart(member.ID, mouse.ID, 1); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	if err := svc.ClearCart(member.ID); err != nil {
		t.Fatalf("ClearCart error: %v", err)
	}
	lines, err := svc.ListCart(member.ID)
	if err != nil {
		t.Fatalf("ListCart error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %d lines", len(lines))
	}
}

func TestListCartPreloadsItem(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_preload")
	member := createTestMember(t, db, "cart7")
	item := createTestItem(t, db, "Keyboard", 45, 10)
	if _, err := svc.AddToCart(member.ID, item.ID, 1); err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	lines, err := svc.ListCart(member.ID)
	if err != nil {
		t.Fatalf("ListCart error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Item == nil || lines[0].Item.Name != "Keyboard" {
		t.Fatalf("expected item preloaded, got %+v", lines[0].Item)
	}
}

func TestResolveForOrderDedupes(t *testing.T) {
	svc, db := setupCartServiceTest(t, "cart_resolve")
	member := createTestMember(t, db, "cart8")
	item := createTestItem(t, db, "Keyboard", 45, 10)
	line, err := svc.AddToCart(member.ID, item.ID, 1)
	if err != nil {
		t.Fatalf("AddToCart error: %v", err)
	}

	cartRepo := repository.NewCartRepository(db)
	lines, err := ResolveForOrder(cartRepo, []uint{line.ID, line.ID, 0}, member.ID)
	if err != nil {
		t.Fatalf("ResolveForOrder error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 resolved line, got %d", len(lines))
	}
}

func TestResolveForOrderEmpty(t *testing.T) {
	_, db := setupCartServiceTest(t, "cart_resolve_empty")
	cartRepo := repository.NewCartRepository(db)
	if _, err := ResolveForOrder(cartRepo, nil, 1); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected invalid cart item, got: %v", err)
	}
	if _, err := ResolveForOrder(cartRepo, []uint{0, 0}, 1); !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected invalid cart item for zero ids, got: %v", err)
	}
}
