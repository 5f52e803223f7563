package catalog

// Pure resolution of "which variant corresponds to the current selection" and
// the display facts derived from it. None of these functions return errors:
// partial or mismatched catalog data is expected (a product can list colors
// before any variants exist), and absence is always nil or empty.

// FindVariant returns the first variant (in the product's variant order)
// satisfying the selected color and size constraints. An absent constraint is
// always satisfied. Duplicate variants for the same combination are a defined
// first-match tie-break, not an error.
func FindVariant(p *Product, selectedColor *ColorOption, selectedSize string) *Variant {
	if p == nil {
		return nil
	}
	wantColor := ""
	if selectedColor != nil {
		wantColor = Normalize(selectedColor.Name)
	}
	wantSize := Normalize(selectedSize)

	for i := range p.Variants {
		v := &p.Variants[i]
		if wantColor != "" {
			got, ok := ResolveColorAttribute(v)
			if !ok || Normalize(got) != wantColor {
				continue
			}
		}
		if wantSize != "" {
			got, ok := ResolveSizeAttribute(v)
			if !ok || Normalize(got) != wantSize {
				continue
			}
		}
		return v
	}
	return nil
}

// AvailableSizesForColor filters the product's canonical size list to those
// sizes backed by at least one variant matching the selected color. With no
// color selected, or no variants at all, the whole product-level list comes
// back. Sizes only some variant carries but the product does not list are
// never returned.
func AvailableSizesForColor(p *Product, selectedColor *ColorOption) []string {
	if p == nil {
		return nil
	}
	if selectedColor == nil || len(p.Variants) == 0 {
		out := make([]string, len(p.Sizes))
		copy(out, p.Sizes)
		return out
	}
	out := make([]string, 0, len(p.Sizes))
	for _, size := range p.Sizes {
		if FindVariant(p, selectedColor, size) != nil {
			out = append(out, size)
		}
	}
	return out
}

// IsSizeOutOfStock is true only when a variant matching color+size exists AND
// its stock is exactly zero. A combination with no matching variant is not
// out of stock (permissive default).
func IsSizeOutOfStock(p *Product, selectedColor *ColorOption, size string) bool {
	v := FindVariant(p, selectedColor, size)
	return v != nil && v.Stock == 0
}

// DisplayImages returns the gallery for the current resolution. A resolved
// variant shows exactly its own gallery, never mixed with the product's. A
// resolved variant without images of its own yields an empty gallery: "no
// image for this finish" beats showing a possibly-wrong base photo.
func DisplayImages(p *Product, v *Variant) []string {
	if v != nil {
		if len(v.Images) > 0 {
			out := make([]string, len(v.Images))
			copy(out, v.Images)
			return out
		}
		if v.Image != "" {
			return []string{v.Image}
		}
		return []string{}
	}
	if p == nil {
		return nil
	}
	out := make([]string, len(p.Images))
	copy(out, p.Images)
	return out
}

// DisplayPrice is the resolved variant's price, else the product's base
// ("from") price.
func DisplayPrice(p *Product, v *Variant) float64 {
	if v != nil {
		return v.Price
	}
	if p == nil {
		return 0
	}
	return p.Price
}
