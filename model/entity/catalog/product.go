package catalog

import "time"

// Product is a catalog entry. Colors, sizes, images and variants are loaded
// as ordered associations.
type Product struct {
	EntityID    uint      `gorm:"column:entity_id;primaryKey;autoIncrement" json:"entity_id"`
	SKU         string    `gorm:"column:sku;type:varchar(64);not null;uniqueIndex" json:"sku"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:varchar(128);index" json:"category"`
	BasePrice   float64   `gorm:"column:base_price;type:decimal(12,4);not null;default:0" json:"base_price"`
	BaseImage   string    `gorm:"column:base_image;type:varchar(255)" json:"base_image"`
	Stock       *int      `gorm:"column:stock" json:"stock,omitempty"`
	// No default tag: gorm drops zero values for defaulted columns on insert,
	// and an inactive product is exactly a zero here. Writers set 1 themselves.
	IsActive    uint16    `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Images   []ProductImage `gorm:"foreignKey:ProductID" json:"images,omitempty"`
	Colors   []ColorOption  `gorm:"foreignKey:ProductID" json:"colors,omitempty"`
	Sizes    []ProductSize  `gorm:"foreignKey:ProductID" json:"sizes,omitempty"`
	Variants []Variant      `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "catalog_product"
}

// ProductImage is one gallery entry; Position defines gallery order.
type ProductImage struct {
	ImageID   uint   `gorm:"column:image_id;primaryKey;autoIncrement" json:"image_id"`
	ProductID uint   `gorm:"column:product_id;not null;index" json:"product_id"`
	Path      string `gorm:"column:path;type:varchar(255);not null" json:"path"`
	Position  uint16 `gorm:"column:position;not null;default:0" json:"position"`
}

func (ProductImage) TableName() string {
	return "catalog_product_image"
}

// ColorOption is a selectable finish. Name is the matching key (matched
// case-insensitively against variant attributes), Hex drives the swatch.
type ColorOption struct {
	OptionID  uint   `gorm:"column:option_id;primaryKey;autoIncrement" json:"option_id"`
	ProductID uint   `gorm:"column:product_id;not null;index" json:"product_id"`
	Name      string `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Hex       string `gorm:"column:hex;type:varchar(16)" json:"hex"`
	Position  uint16 `gorm:"column:position;not null;default:0" json:"position"`
}

func (ColorOption) TableName() string {
	return "catalog_product_color"
}

// ProductSize is one entry of the product-level size list.
type ProductSize struct {
	SizeID    uint   `gorm:"column:size_id;primaryKey;autoIncrement" json:"size_id"`
	ProductID uint   `gorm:"column:product_id;not null;index" json:"product_id"`
	Label     string `gorm:"column:label;type:varchar(64);not null" json:"label"`
	Position  uint16 `gorm:"column:position;not null;default:0" json:"position"`
}

func (ProductSize) TableName() string {
	return "catalog_product_size"
}
