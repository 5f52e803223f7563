package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/mitchellh/mapstructure"

	catalogEntity "mobilia.GO/model/entity/catalog"
)

// decodeAttributes converts the stored free-form JSON attribute map into the
// string-to-string mapping the synonym probes work on. Weak typing absorbs
// numeric values the backend sometimes writes for sizes.
func decodeAttributes(in map[string]interface{}) map[string]string {
	out := make(map[string]string, len(in))
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &out,
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return map[string]string{}
	}
	if err := dec.Decode(in); err != nil {
		return map[string]string{}
	}
	return out
}

// ViewVariant maps a variant entity to its storefront shape.
func ViewVariant(v *catalogEntity.Variant) Variant {
	out := Variant{
		ID:         v.VariantID,
		SKU:        v.SKU,
		Price:      v.Price,
		Stock:      v.Stock,
		Attributes: decodeAttributes(v.Attributes),
		Image:      v.Image,
	}
	if len(v.Images) > 0 {
		var imgs []string
		if err := json.Unmarshal(v.Images, &imgs); err == nil {
			out.Images = imgs
		}
	}
	return out
}

// ViewProduct maps a product entity with its associations to the storefront
// shape. allAttributes collects the distinct values seen per attribute label
// across the product's variants.
func ViewProduct(e *catalogEntity.Product) Product {
	p := Product{
		ID:          strconv.FormatUint(uint64(e.EntityID), 10),
		SKU:         e.SKU,
		Name:        e.Name,
		Price:       e.BasePrice,
		Category:    e.Category,
		Image:       e.BaseImage,
		Description: e.Description,
		Stock:       e.Stock,
		Images:      make([]string, 0, len(e.Images)),
		Colors:      make([]ColorOption, 0, len(e.Colors)),
		Sizes:       make([]string, 0, len(e.Sizes)),
		Variants:    make([]Variant, 0, len(e.Variants)),
	}
	for _, img := range e.Images {
		p.Images = append(p.Images, img.Path)
	}
	for _, c := range e.Colors {
		p.Colors = append(p.Colors, ColorOption{Name: c.Name, Hex: c.Hex})
	}
	for _, s := range e.Sizes {
		p.Sizes = append(p.Sizes, s.Label)
	}
	for i := range e.Variants {
		p.Variants = append(p.Variants, ViewVariant(&e.Variants[i]))
	}
	p.AllAttributes = collectAllAttributes(p.Variants)
	return p
}

func ViewProducts(entities []catalogEntity.Product) []Product {
	out := make([]Product, 0, len(entities))
	for i := range entities {
		out = append(out, ViewProduct(&entities[i]))
	}
	return out
}

func collectAllAttributes(variants []Variant) map[string]interface{} {
	if len(variants) == 0 {
		return nil
	}
	seen := map[string]map[string]bool{}
	order := map[string][]string{}
	for _, v := range variants {
		for label, value := range v.Attributes {
			if seen[label] == nil {
				seen[label] = map[string]bool{}
			}
			if !seen[label][value] {
				seen[label][value] = true
				order[label] = append(order[label], value)
			}
		}
	}
	if len(order) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(order))
	for label, values := range order {
		out[label] = values
	}
	return out
}
