package selection

import (
	"fmt"

	"mobilia.GO/service/cart"
	"mobilia.GO/service/catalog"
)

// Controller drives the per-displayed-product selection state machine shared
// by the catalog card, the detail modal and the size-picker modal. All
// failures surface as inline validation messages, never as panics; the
// message clears on the next successful interaction.
type Controller struct {
	product  *catalog.Product
	color    *catalog.ColorOption
	size     string
	quantity int
	message  string
}

func NewController() *Controller {
	return &Controller{quantity: 1}
}

// Reset recomputes the whole selection for a newly displayed product; it is
// a full reinitialization, never a merge with prior state. A caller-supplied
// preselected color (a card's last hovered swatch) wins; otherwise the color
// comes from the first in-stock variant (first variant overall when
// everything is out of stock), then from the product's listed colors.
func (c *Controller) Reset(p *catalog.Product, preselected *catalog.ColorOption) {
	c.product = p
	c.color = nil
	c.size = ""
	c.quantity = 1
	c.message = ""
	if p == nil {
		return
	}

	if preselected != nil {
		c.color = matchColorOption(p, preselected.Name)
		if c.color == nil {
			copied := *preselected
			c.color = &copied
		}
		return
	}

	if len(p.Variants) > 0 {
		initial := &p.Variants[0]
		for i := range p.Variants {
			if p.Variants[i].Stock > 0 {
				initial = &p.Variants[i]
				break
			}
		}
		if name, ok := catalog.ResolveColorAttribute(initial); ok {
			c.color = matchColorOption(p, name)
		}
		return
	}

	if len(p.Colors) > 0 {
		c.color = &p.Colors[0]
	}
}

// matchColorOption finds the product color option whose name matches,
// normalized. Matching is by name, never by reference.
func matchColorOption(p *catalog.Product, name string) *catalog.ColorOption {
	want := catalog.Normalize(name)
	for i := range p.Colors {
		if catalog.Normalize(p.Colors[i].Name) == want {
			return &p.Colors[i]
		}
	}
	return nil
}

// SelectColor sets the color and unconditionally clears the size: switching
// finish always forces a fresh size choice, so a size that may not exist for
// the new color is never carried over silently.
func (c *Controller) SelectColor(color catalog.ColorOption) {
	c.color = &color
	c.size = ""
	c.message = ""
}

// SelectSize ignores clicks on out-of-stock sizes (no state change, no
// error); otherwise it sets the size and clears any validation message.
func (c *Controller) SelectSize(size string) {
	if catalog.IsSizeOutOfStock(c.product, c.color, size) {
		return
	}
	c.size = size
	c.message = ""
}

func (c *Controller) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	c.quantity = q
}

// Variant resolves the variant for the current selection.
func (c *Controller) Variant() *catalog.Variant {
	return catalog.FindVariant(c.product, c.color, c.size)
}

func (c *Controller) Color() *catalog.ColorOption { return c.color }
func (c *Controller) Size() string                { return c.size }
func (c *Controller) Quantity() int               { return c.quantity }

// ValidationMessage returns the current inline validation text ("" when none).
func (c *Controller) ValidationMessage() string { return c.message }

// DisplayImages returns the gallery for the current selection. A selected
// color that no variant carries yields an empty gallery, never the base
// product photos.
func (c *Controller) DisplayImages() []string {
	variant := c.Variant()
	if variant == nil && c.color != nil && c.product != nil && len(c.product.Variants) > 0 {
		return []string{}
	}
	return catalog.DisplayImages(c.product, variant)
}

// DisplayPrice returns the price for the current selection.
func (c *Controller) DisplayPrice() float64 {
	return catalog.DisplayPrice(c.product, c.Variant())
}

// AddToCart validates the current selection and delegates to the cart
// reducer. It returns the (possibly unchanged) cart and whether a line was
// added. Validation failures set the inline message; the zero-stock case
// rejects silently because the add control is already disabled there.
func (c *Controller) AddToCart(lines []cart.Line, quantity int) ([]cart.Line, bool) {
	if c.product == nil {
		return lines, false
	}
	if quantity < 1 {
		quantity = 1
	}

	if len(c.product.Sizes) > 0 && c.size == "" {
		c.message = "select a size"
		return lines, false
	}

	variant := c.Variant()

	ceiling, hasCeiling := c.stockCeiling(variant)
	if hasCeiling && ceiling == 0 {
		// No inline message at zero stock; the add control is disabled.
		return lines, false
	}
	if hasCeiling && quantity > ceiling {
		c.message = fmt.Sprintf("only %d available", ceiling)
		return lines, false
	}

	c.message = ""
	c.quantity = quantity
	return cart.Add(lines, c.product, variant, c.color, c.size, quantity), true
}

// stockCeiling is the resolved variant's stock, or the product-level stock
// for variant-less products. No stock information means no ceiling.
func (c *Controller) stockCeiling(variant *catalog.Variant) (int, bool) {
	if variant != nil {
		return variant.Stock, true
	}
	if len(c.product.Variants) == 0 && c.product.Stock != nil {
		return *c.product.Stock, true
	}
	return 0, false
}
