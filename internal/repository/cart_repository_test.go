package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/commerce-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupCartRepositoryTest(t *testing.T, name string) (*GormCartRepository, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Item{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartRepository(db), db
}

func seedCartLine(t *testing.T, db *gorm.DB, memberID, itemID uint, quantity int, activated bool) *models.CartItem {
	t.Helper()
	line := &models.CartItem{
		MemberID:         memberID,
		ItemID:           itemID,
		UsedQuantity:     quantity,
		PurchaseQuantity: quantity,
		Activated:        activated,
	}
	if err := db.Create(line).Error; err != nil {
		t.Fatalf("create cart line failed: %v", err)
	}
	return line
}

func TestDeactivateByIDsOnlyHitsActiveRows(t *testing.T) {
	repo, db := setupCartRepositoryTest(t, "cart_repo_deactivate")
	active := seedCartLine(t, db, 1, 10, 1, true)
	consumed := seedCartLine(t, db, 1, 11, 1, false)

	rows, err := repo.DeactivateByIDs([]uint{active.ID, consumed.ID})
	if err != nil {
		t.Fatalf("DeactivateByIDs error: %v", err)
	}
	// 已消费的行不计入受影响行数，调用方据此发现并发冲突
	if rows != 1 {
		t.Fatalf("expected 1 row affected, got %d", rows)
	}

	rows, err = repo.DeactivateByIDs([]uint{active.ID})
	if err != nil {
		t.Fatalf("DeactivateByIDs error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows on second deactivate, got %d", rows)
	}
}

func TestDeactivateByIDsEmpty(t *testing.T) {
	repo, _ := setupCartRepositoryTest(t, "cart_repo_deactivate_empty")
	rows, err := repo.DeactivateByIDs(nil)
	if err != nil {
		t.Fatalf("DeactivateByIDs error: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows, got %d", rows)
	}
}

func TestListActiveByIDsAndMemberScopesToMember(t *testing.T) {
	repo, db := setupCartRepositoryTest(t, "cart_repo_scope")
	mine := seedCartLine(t, db, 1, 10, 1, true)
	other := seedCartLine(t, db, 2, 10, 1, true)
	inactive := seedCartLine(t, db, 1, 11, 1, false)

	lines, err := repo.ListActiveByIDsAndMember([]uint{mine.ID, other.ID, inactive.ID}, 1)
	if err != nil {
		t.Fatalf("ListActiveByIDsAndMember error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].ID != mine.ID {
		t.Fatalf("unexpected line: %+v", lines[0])
	}
}

func TestUpsertCreatesAndUpdates(t *testing.T) {
	repo, db := setupCartRepositoryTest(t, "cart_repo_upsert")
	line := &models.CartItem{MemberID: 1, ItemID: 10, UsedQuantity: 2, PurchaseQuantity: 2, Activated: true}
	if err := repo.Upsert(line); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	firstID := line.ID

	again := &models.CartItem{MemberID: 1, ItemID: 10, UsedQuantity: 7, PurchaseQuantity: 7, Activated: true}
	if err := repo.Upsert(again); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if again.ID != firstID {
		t.Fatalf("expected upsert to reuse row %d, got %d", firstID, again.ID)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("member_id = ? AND item_id = ?", 1, 10).Count(&count).Error; err != nil {
		t.Fatalf("count cart lines failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected single row, got %d", count)
	}

	var reloaded models.CartItem
	if err := db.First(&reloaded, firstID).Error; err != nil {
		t.Fatalf("load cart line failed: %v", err)
	}
	if reloaded.UsedQuantity != 7 {
		t.Fatalf("expected quantity 7, got %d", reloaded.UsedQuantity)
	}
}

func TestUpsertIgnoresConsumedRow(t *testing.T) {
	repo, db := setupCartRepositoryTest(t, "cart_repo_upsert_consumed")
	consumed := seedCartLine(t, db, 1, 10, 1, false)

	line := &models.CartItem{MemberID: 1, ItemID: 10, UsedQuantity: 3, PurchaseQuantity: 3, Activated: true}
	if err := repo.Upsert(line); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if line.ID == consumed.ID {
		t.Fatalf("expected new row instead of reviving consumed one")
	}
}
