package catalog

// View model served to the storefront. Shapes follow the catalog fetch
// contract: id, name, price, category, image, images, description,
// variants[], colors[], sizes[], allAttributes.

type ColorOption struct {
	Name string `json:"name" mapstructure:"name"`
	Hex  string `json:"hex" mapstructure:"hex"`
}

type Variant struct {
	ID         uint              `json:"id" mapstructure:"id"`
	SKU        string            `json:"sku" mapstructure:"sku"`
	Price      float64           `json:"price" mapstructure:"price"`
	Stock      int               `json:"stock" mapstructure:"stock"`
	Attributes map[string]string `json:"attributes" mapstructure:"attributes"`
	Image      string            `json:"image,omitempty" mapstructure:"image"`
	Images     []string          `json:"images,omitempty" mapstructure:"images"`
}

type Product struct {
	ID            string                 `json:"id" mapstructure:"id"`
	SKU           string                 `json:"sku" mapstructure:"sku"`
	Name          string                 `json:"name" mapstructure:"name"`
	Price         float64                `json:"price" mapstructure:"price"`
	Category      string                 `json:"category" mapstructure:"category"`
	Image         string                 `json:"image" mapstructure:"image"`
	Images        []string               `json:"images" mapstructure:"images"`
	Description   string                 `json:"description,omitempty" mapstructure:"description"`
	Stock         *int                   `json:"stock,omitempty" mapstructure:"stock"`
	Colors        []ColorOption          `json:"colors" mapstructure:"colors"`
	Sizes         []string               `json:"sizes" mapstructure:"sizes"`
	Variants      []Variant              `json:"variants" mapstructure:"variants"`
	AllAttributes map[string]interface{} `json:"allAttributes,omitempty" mapstructure:"allAttributes"`
}
