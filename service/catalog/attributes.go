package catalog

import "strings"

// The backend labels variant attributes inconsistently across products.
// Each logical attribute is probed through an ordered synonym key list;
// the first key present in the variant's attribute map wins. New synonyms
// are a data change here, not new conditionals.
var (
	colorAttributeKeys = []string{"Color", "Acabado", "color"}
	sizeAttributeKeys  = []string{"Talla", "Tamaño", "Size", "Medida"}
)

// Normalize is the matching form for attribute values and color names:
// case-insensitive, whitespace-trimmed. Never match by identity.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func resolveAttribute(v *Variant, keys []string) (string, bool) {
	if v == nil || len(v.Attributes) == 0 {
		return "", false
	}
	for _, key := range keys {
		if val, ok := v.Attributes[key]; ok {
			return val, true
		}
	}
	return "", false
}

// ResolveColorAttribute returns the variant's color/finish value, probing the
// color synonym keys in fixed order.
func ResolveColorAttribute(v *Variant) (string, bool) {
	return resolveAttribute(v, colorAttributeKeys)
}

// ResolveSizeAttribute returns the variant's size value, probing the size
// synonym keys in fixed order.
func ResolveSizeAttribute(v *Variant) (string, bool) {
	return resolveAttribute(v, sizeAttributeKeys)
}
