package cart

import (
	"strconv"

	"mobilia.GO/service/catalog"
)

// Line is one row of the shopping cart. UnitPrice and Image are snapshots
// taken at add time; they are never re-derived from the catalog afterwards.
type Line struct {
	CartItemID string  `json:"cart_item_id"`
	ProductID  string  `json:"product_id"`
	VariantID  *uint   `json:"variant_id,omitempty"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Image      string  `json:"image"`
	Color      string  `json:"selected_color,omitempty"`
	Size       string  `json:"selected_size,omitempty"`
}

// LineIdentity derives the cart-line merge key. A resolved variant keys the
// line by its id; otherwise productID plus the selected color name (empty
// when no color). Variant-less products therefore cannot split by size in
// the cart — a documented coarsening, not a bug.
func LineIdentity(p *catalog.Product, v *catalog.Variant, selectedColor *catalog.ColorOption) string {
	if v != nil {
		return strconv.FormatUint(uint64(v.ID), 10)
	}
	id := ""
	if p != nil {
		id = p.ID
	}
	if selectedColor != nil {
		id += selectedColor.Name
	}
	return id
}
