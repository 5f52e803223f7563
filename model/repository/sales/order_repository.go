package sales

import (
	"gorm.io/gorm"

	salesEntity "mobilia.GO/model/entity/sales"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(o *salesEntity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) FindByIncrementID(incrementID string) (*salesEntity.Order, error) {
	var o salesEntity.Order
	err := r.db.Preload("Items").First(&o, "increment_id = ?", incrementID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) FindByCustomer(customerID uint) ([]salesEntity.Order, error) {
	var orders []salesEntity.Order
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("order_id DESC").
		Find(&orders).Error
	return orders, err
}
