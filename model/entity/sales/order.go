package sales

import "time"

// Order is a placed checkout. Totals and line prices come from the cart's
// stored snapshots, never re-derived from the catalog at checkout time.
type Order struct {
	OrderID     uint      `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	IncrementID string    `gorm:"column:increment_id;type:varchar(64);not null;uniqueIndex" json:"increment_id"`
	CustomerID  uint      `gorm:"column:customer_id;not null;index" json:"customer_id"`
	GrandTotal  float64   `gorm:"column:grand_total;type:decimal(12,4);not null" json:"grand_total"`
	Currency    string    `gorm:"column:currency;type:varchar(8);not null" json:"currency"`
	Status      string    `gorm:"column:status;type:varchar(32);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "sales_order"
}

type OrderItem struct {
	ItemID      uint    `gorm:"column:item_id;primaryKey;autoIncrement" json:"item_id"`
	OrderID     uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	VariantID   *uint   `gorm:"column:variant_id" json:"variant_id"`
	ProductName string  `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	UnitPrice   float64 `gorm:"column:unit_price;type:decimal(12,4);not null" json:"unit_price"`
	Quantity    int     `gorm:"column:quantity;not null" json:"quantity"`
	OptionColor string  `gorm:"column:option_color;type:varchar(64)" json:"option_color,omitempty"`
	OptionSize  string  `gorm:"column:option_size;type:varchar(64)" json:"option_size,omitempty"`
}

func (OrderItem) TableName() string {
	return "sales_order_item"
}
