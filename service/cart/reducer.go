package cart

import "mobilia.GO/service/catalog"

// The reducer never mutates its input: every operation returns a fresh slice
// with copied lines, so prior cart states stay valid for undo and tests.

func cloneLines(lines []Line) []Line {
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Add merges the request into the line with the same identity, incrementing
// its quantity and preserving every other field (including the original
// price snapshot — a later add never refreshes the price). Without a match
// it appends a new line snapshotting price and image at call time.
func Add(lines []Line, p *catalog.Product, v *catalog.Variant, selectedColor *catalog.ColorOption, selectedSize string, quantity int) []Line {
	if quantity <= 0 {
		quantity = 1
	}
	id := LineIdentity(p, v, selectedColor)

	for i := range lines {
		if lines[i].CartItemID == id {
			out := cloneLines(lines)
			out[i].Quantity += quantity
			return out
		}
	}

	line := Line{
		CartItemID: id,
		UnitPrice:  catalog.DisplayPrice(p, v),
		Quantity:   quantity,
		Size:       selectedSize,
	}
	if p != nil {
		line.ProductID = p.ID
		line.Name = p.Name
		line.Image = p.Image
	}
	if v != nil {
		vid := v.ID
		line.VariantID = &vid
		if v.Image != "" {
			line.Image = v.Image
		}
	}
	if selectedColor != nil {
		line.Color = selectedColor.Name
	}

	out := cloneLines(lines)
	return append(out, line)
}

// UpdateQuantity adds delta (possibly negative) to the matching line,
// clamping at zero and dropping any line that reaches it. Unknown ids are a
// no-op.
func UpdateQuantity(lines []Line, cartItemID string, delta int) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.CartItemID == cartItemID {
			line.Quantity += delta
			if line.Quantity <= 0 {
				continue
			}
		}
		out = append(out, line)
	}
	return out
}

// Remove filters out the matching line; no-op when absent.
func Remove(lines []Line, cartItemID string) []Line {
	out := make([]Line, 0, len(lines))
	for _, line := range lines {
		if line.CartItemID == cartItemID {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Total sums unit price times quantity over all lines.
func Total(lines []Line) float64 {
	var total float64
	for _, line := range lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount sums quantities over all lines.
func ItemCount(lines []Line) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
