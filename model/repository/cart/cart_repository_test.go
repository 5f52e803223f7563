package cart

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	cartEntity "mobilia.GO/model/entity/cart"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&cartEntity.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func variantItem(customerID uint, variantID uint, qty int, price float64) cartEntity.CartItem {
	return cartEntity.CartItem{
		CustomerID:        customerID,
		VariantID:         &variantID,
		MergeKey:          "31",
		FixedProductName:  "Sofá Bremen",
		UnitPriceSnapshot: price,
		Quantity:          qty,
	}
}

func TestAddItem_CreatesThenMerges(t *testing.T) {
	repo := NewCartRepository(testDB(t))

	first, err := repo.AddItem(variantItem(7, 31, 2, 949))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if first.ItemID == 0 {
		t.Error("ItemID not set on create")
	}

	// second add with a different snapshot price: quantity merges, the
	// original snapshot stays
	merged, err := repo.AddItem(variantItem(7, 31, 3, 1099))
	if err != nil {
		t.Fatalf("AddItem (merge): %v", err)
	}
	if merged.ItemID != first.ItemID {
		t.Errorf("merge created a new row: %d vs %d", merged.ItemID, first.ItemID)
	}
	if merged.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", merged.Quantity)
	}
	if merged.UnitPriceSnapshot != 949 {
		t.Errorf("UnitPriceSnapshot = %v, want 949 (never refreshed on merge)", merged.UnitPriceSnapshot)
	}
}

func TestAddItem_DifferentCustomersDoNotMerge(t *testing.T) {
	repo := NewCartRepository(testDB(t))
	repo.AddItem(variantItem(7, 31, 1, 949))
	other, err := repo.AddItem(variantItem(8, 31, 1, 949))
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if other.Quantity != 1 {
		t.Errorf("Quantity = %d, want 1", other.Quantity)
	}
}

func TestUpdateQuantity(t *testing.T) {
	repo := NewCartRepository(testDB(t))
	item, _ := repo.AddItem(variantItem(7, 31, 2, 949))

	updated, err := repo.UpdateQuantity(7, item.ItemID, 1)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if updated.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", updated.Quantity)
	}

	// dropping to zero removes the row
	removed, err := repo.UpdateQuantity(7, item.ItemID, -3)
	if err != nil {
		t.Fatalf("UpdateQuantity: %v", err)
	}
	if removed != nil {
		t.Errorf("expected nil after drop to zero, got %+v", removed)
	}
	items, _ := repo.FindByCustomer(7)
	if len(items) != 0 {
		t.Errorf("rows = %d, want 0", len(items))
	}
}

func TestUpdateQuantity_UnknownIDNoOp(t *testing.T) {
	repo := NewCartRepository(testDB(t))
	item, err := repo.UpdateQuantity(7, 999, 1)
	if err != nil || item != nil {
		t.Errorf("unknown id: item=%v err=%v, want nil/nil", item, err)
	}
}

func TestClear_ScopedToCustomer(t *testing.T) {
	repo := NewCartRepository(testDB(t))
	repo.AddItem(variantItem(7, 31, 1, 949))
	repo.AddItem(variantItem(8, 31, 1, 949))

	if err := repo.Clear(7); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	mine, _ := repo.FindByCustomer(7)
	theirs, _ := repo.FindByCustomer(8)
	if len(mine) != 0 || len(theirs) != 1 {
		t.Errorf("rows after clear = %d/%d, want 0/1", len(mine), len(theirs))
	}
}

func TestPruneOlderThan(t *testing.T) {
	db := testDB(t)
	repo := NewCartRepository(db)
	item, _ := repo.AddItem(variantItem(7, 31, 1, 949))

	// nothing is old enough yet
	n, err := repo.PruneOlderThan(time.Now().Add(-time.Hour))
	if err != nil || n != 0 {
		t.Errorf("prune fresh: n=%d err=%v, want 0/nil", n, err)
	}

	// backdate the row and prune again
	db.Model(&cartEntity.CartItem{}).Where("item_id = ?", item.ItemID).
		Update("updated_at", time.Now().AddDate(0, 0, -40))
	n, err = repo.PruneOlderThan(time.Now().AddDate(0, 0, -30))
	if err != nil || n != 1 {
		t.Errorf("prune stale: n=%d err=%v, want 1/nil", n, err)
	}
}
