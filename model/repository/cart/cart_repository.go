package cart

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	cartEntity "mobilia.GO/model/entity/cart"
)

type CartRepository struct {
	db *gorm.DB
}

var (
	instMu    sync.Mutex
	instances = map[*gorm.DB]*CartRepository{}
)

func GetCartRepository(db *gorm.DB) *CartRepository {
	instMu.Lock()
	defer instMu.Unlock()
	if r, ok := instances[db]; ok {
		return r
	}
	r := NewCartRepository(db)
	instances[db] = r
	return r
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

func (r *CartRepository) FindByCustomer(customerID uint) ([]cartEntity.CartItem, error) {
	var items []cartEntity.CartItem
	err := r.db.Where("customer_id = ?", customerID).Order("item_id ASC").Find(&items).Error
	return items, err
}

// AddItem merges on (customer_id, merge_key): an existing row gets its
// quantity incremented with all snapshot columns preserved, otherwise the
// row is created as given.
func (r *CartRepository) AddItem(item cartEntity.CartItem) (*cartEntity.CartItem, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing cartEntity.CartItem
		err := tx.Where("customer_id = ? AND merge_key = ?", item.CustomerID, item.MergeKey).First(&existing).Error
		if err == nil {
			existing.Quantity += item.Quantity
			if err := tx.Model(&existing).Update("quantity", existing.Quantity).Error; err != nil {
				return err
			}
			item = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity adds delta to a line's quantity, removing the line when the
// result drops to zero or below. Unknown item ids are a no-op.
func (r *CartRepository) UpdateQuantity(customerID, itemID uint, delta int) (*cartEntity.CartItem, error) {
	var item cartEntity.CartItem
	err := r.db.Where("customer_id = ? AND item_id = ?", customerID, itemID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item.Quantity += delta
	if item.Quantity <= 0 {
		if err := r.db.Delete(&item).Error; err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err := r.db.Model(&item).Update("quantity", item.Quantity).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Remove(customerID, itemID uint) error {
	return r.db.Where("customer_id = ? AND item_id = ?", customerID, itemID).
		Delete(&cartEntity.CartItem{}).Error
}

func (r *CartRepository) Clear(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&cartEntity.CartItem{}).Error
}

// PruneOlderThan deletes cart rows not touched since the cutoff. Used by the
// nightly cart prune job.
func (r *CartRepository) PruneOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("updated_at < ?", cutoff).Delete(&cartEntity.CartItem{})
	return res.RowsAffected, res.Error
}
