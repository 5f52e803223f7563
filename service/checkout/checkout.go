package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	salesEntity "mobilia.GO/model/entity/sales"
	cartRepo "mobilia.GO/model/repository/cart"
	salesRepo "mobilia.GO/model/repository/sales"
)

var ErrEmptyCart = errors.New("checkout: cart is empty")

// PlaceOrder snapshots the customer's server-side cart into an order and
// clears the cart. Line prices come from the cart's stored snapshots; the
// catalog is not consulted again at checkout time.
func PlaceOrder(db *gorm.DB, customerID uint, currency string) (*salesEntity.Order, error) {
	items, err := cartRepo.GetCartRepository(db).FindByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &salesEntity.Order{
		IncrementID: strings.ToUpper(uuid.NewString()[:8]),
		CustomerID:  customerID,
		Currency:    currency,
		Status:      "pending",
	}
	for _, item := range items {
		order.Items = append(order.Items, salesEntity.OrderItem{
			VariantID:   item.VariantID,
			ProductName: item.FixedProductName,
			UnitPrice:   item.UnitPriceSnapshot,
			Quantity:    item.Quantity,
			OptionColor: item.OptionColor,
			OptionSize:  item.OptionSize,
		})
		order.GrandTotal += item.UnitPriceSnapshot * float64(item.Quantity)
	}

	if err := salesRepo.NewOrderRepository(db).Create(order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	if err := cartRepo.GetCartRepository(db).Clear(customerID); err != nil {
		return nil, fmt.Errorf("clear cart: %w", err)
	}
	return order, nil
}
