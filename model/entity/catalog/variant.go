package catalog

import (
	"gorm.io/datatypes"
)

// Variant is a concrete purchasable SKU of a product. Attributes is a
// free-form label-to-value mapping; the backend uses inconsistent labels
// across products (Color/Acabado/color, Talla/Tamaño/Size/Medida), so it is
// stored as JSON and probed through the synonym tables, never as columns.
type Variant struct {
	VariantID  uint              `gorm:"column:variant_id;primaryKey;autoIncrement" json:"variant_id"`
	ProductID  uint              `gorm:"column:product_id;not null;index" json:"product_id"`
	SKU        string            `gorm:"column:sku;type:varchar(64);not null" json:"sku"`
	Price      float64           `gorm:"column:price;type:decimal(12,4);not null;default:0" json:"price"`
	Stock      int               `gorm:"column:stock;not null;default:0" json:"stock"`
	Attributes datatypes.JSONMap `gorm:"column:attributes" json:"attributes"`
	Image      string            `gorm:"column:image;type:varchar(255)" json:"image,omitempty"`
	Images     datatypes.JSON    `gorm:"column:images" json:"images,omitempty"`
	Position   uint16            `gorm:"column:position;not null;default:0" json:"position"`
}

func (Variant) TableName() string {
	return "catalog_product_variant"
}
