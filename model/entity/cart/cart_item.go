package cart

import "time"

// CartItem is one line of a customer's server-side cart. MergeKey carries the
// same identity the storefront reducer derives locally, so repeated adds of
// the same variant (or variant-less product+color) fold into one row on both
// sides. Snapshot columns are fixed at add time and never re-derived.
type CartItem struct {
	ItemID             uint      `gorm:"column:item_id;primaryKey;autoIncrement" json:"id"`
	CustomerID         uint      `gorm:"column:customer_id;not null;index" json:"customer_id"`
	VariantID          *uint     `gorm:"column:variant_id" json:"variant_id"`
	MergeKey           string    `gorm:"column:merge_key;type:varchar(128);not null;index" json:"-"`
	FixedProductName   string    `gorm:"column:fixed_product_name;type:varchar(255);not null" json:"fixed_product_name"`
	UnitPriceSnapshot  float64   `gorm:"column:unit_price_snapshot;type:decimal(12,4);not null" json:"-"`
	Quantity           int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	FixedImageSnapshot string    `gorm:"column:fixed_image_snapshot;type:varchar(255)" json:"fixed_image_snapshot"`
	OptionColor        string    `gorm:"column:option_color;type:varchar(64)" json:"-"`
	OptionSize         string    `gorm:"column:option_size;type:varchar(64)" json:"-"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CartItem) TableName() string {
	return "customer_cart_item"
}
