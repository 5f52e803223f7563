package cart

import (
	"context"
	"log"
	"strconv"
)

// ServerItem is one cart line as the backend persists it. Field names are
// the backend's, not ours; LinesFromServer does the renames.
type ServerItem struct {
	ID                  uint              `json:"id"`
	VariantID           *uint             `json:"variant_id"`
	FixedProductName    string            `json:"fixed_product_name"`
	UnitPriceSnapshot   string            `json:"unit_price_snapshot"`
	Quantity            int               `json:"quantity"`
	FixedImageSnapshot  string            `json:"fixed_image_snapshot"`
	FixedVariantOptions map[string]string `json:"fixed_variant_options"`
}

// LinesFromServer maps a server cart snapshot to local lines: variant_id→id,
// id→cartItemId, fixed_product_name→name, unit_price_snapshot (string)→price.
// A snapshot REPLACES the local cart wholesale; there is no merging.
func LinesFromServer(items []ServerItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		price, err := strconv.ParseFloat(item.UnitPriceSnapshot, 64)
		if err != nil {
			price = 0
		}
		line := Line{
			CartItemID: strconv.FormatUint(uint64(item.ID), 10),
			VariantID:  item.VariantID,
			Name:       item.FixedProductName,
			UnitPrice:  price,
			Quantity:   item.Quantity,
			Image:      item.FixedImageSnapshot,
		}
		if item.FixedVariantOptions != nil {
			line.Color = item.FixedVariantOptions["Color"]
			line.Size = item.FixedVariantOptions["Talla"]
		}
		lines = append(lines, line)
	}
	return lines
}

// Replicator is the backend side channel for cart mutations.
type Replicator interface {
	AddItem(ctx context.Context, variantID uint, quantity int) error
}

// Mirror queues best-effort replication of local cart mutations. The local
// update has already committed by the time anything is enqueued: failures are
// logged and swallowed, never surfaced to the user and never reconciled
// backward into local state.
type Mirror struct {
	replicator Replicator
	queue      chan mirrorOp
	done       chan struct{}
}

type mirrorOp struct {
	variantID uint
	quantity  int
}

// NewMirror starts the single replication worker. A nil replicator yields a
// mirror that drops everything (guest sessions).
func NewMirror(replicator Replicator) *Mirror {
	m := &Mirror{
		replicator: replicator,
		queue:      make(chan mirrorOp, 64),
		done:       make(chan struct{}),
	}
	go m.run()
	return m
}

func (m *Mirror) run() {
	defer close(m.done)
	for op := range m.queue {
		if m.replicator == nil {
			continue
		}
		if err := m.replicator.AddItem(context.Background(), op.variantID, op.quantity); err != nil {
			log.Printf("cart mirror: replicate variant=%d qty=%d failed: %v", op.variantID, op.quantity, err)
		}
	}
}

// EnqueueAdd queues an add for replication. Only variant-backed adds have a
// server-side representation; anything else is dropped. A full queue drops
// too — the local cart stays authoritative either way.
func (m *Mirror) EnqueueAdd(variantID *uint, quantity int) {
	if m == nil || variantID == nil {
		return
	}
	select {
	case m.queue <- mirrorOp{variantID: *variantID, quantity: quantity}:
	default:
		log.Printf("cart mirror: queue full, dropping replicate for variant=%d", *variantID)
	}
}

// Close stops the worker after draining queued ops.
func (m *Mirror) Close() {
	close(m.queue)
	<-m.done
}
