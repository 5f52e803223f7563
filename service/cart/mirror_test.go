package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mobilia.GO/service/catalog"
)

func TestLinesFromServer_FieldRenames(t *testing.T) {
	vid := uint(55)
	items := []ServerItem{
		{
			ID:                  301,
			VariantID:           &vid,
			FixedProductName:    "Mesa Alta",
			UnitPriceSnapshot:   "150.00",
			Quantity:            2,
			FixedImageSnapshot:  "mesa-blanco.jpg",
			FixedVariantOptions: map[string]string{"Color": "Blanco", "Talla": "M"},
		},
	}
	lines := LinesFromServer(items)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if l.CartItemID != "301" {
		t.Errorf("cartItemId: got %q, want 301", l.CartItemID)
	}
	if l.VariantID == nil || *l.VariantID != 55 {
		t.Errorf("variant id: got %v, want 55", l.VariantID)
	}
	if l.Name != "Mesa Alta" || l.Image != "mesa-blanco.jpg" {
		t.Errorf("snapshots not mapped: %+v", l)
	}
	if l.UnitPrice != 150 {
		t.Errorf("unit price: got %v, want 150 (parsed from string)", l.UnitPrice)
	}
	if l.Color != "Blanco" || l.Size != "M" {
		t.Errorf("variant options: got %q/%q", l.Color, l.Size)
	}
}

func TestLinesFromServer_BadPriceAndMissingOptions(t *testing.T) {
	lines := LinesFromServer([]ServerItem{{ID: 1, UnitPriceSnapshot: "not-a-number", Quantity: 1}})
	if lines[0].UnitPrice != 0 {
		t.Errorf("bad snapshot price: got %v, want 0", lines[0].UnitPrice)
	}
	if lines[0].Color != "" || lines[0].Size != "" {
		t.Errorf("missing options: got %q/%q, want empty", lines[0].Color, lines[0].Size)
	}
}

type fakeReplicator struct {
	mu    sync.Mutex
	calls []mirrorOp
	err   error
	done  chan struct{}
}

func (f *fakeReplicator) AddItem(_ context.Context, variantID uint, quantity int) error {
	f.mu.Lock()
	f.calls = append(f.calls, mirrorOp{variantID: variantID, quantity: quantity})
	f.mu.Unlock()
	if f.done != nil {
		f.done <- struct{}{}
	}
	return f.err
}

func TestMirror_ReplicatesAfterLocalCommit(t *testing.T) {
	rep := &fakeReplicator{}
	m := NewMirror(rep)

	vid := uint(55)
	m.EnqueueAdd(&vid, 2)
	m.Close() // drains the queue

	rep.mu.Lock()
	defer rep.mu.Unlock()
	if len(rep.calls) != 1 {
		t.Fatalf("got %d replicate calls, want 1", len(rep.calls))
	}
	if rep.calls[0].variantID != 55 || rep.calls[0].quantity != 2 {
		t.Errorf("replicated %+v, want variant 55 qty 2", rep.calls[0])
	}
}

func TestMirror_FailureIsSwallowed(t *testing.T) {
	rep := &fakeReplicator{err: errors.New("backend down")}
	m := NewMirror(rep)

	vid := uint(55)
	m.EnqueueAdd(&vid, 1)
	m.Close()
	// No panic, no propagation; the local cart never learns about the failure.
}

func TestMirror_DropsVariantlessAdds(t *testing.T) {
	rep := &fakeReplicator{}
	m := NewMirror(rep)
	m.EnqueueAdd(nil, 1)
	m.Close()

	rep.mu.Lock()
	defer rep.mu.Unlock()
	if len(rep.calls) != 0 {
		t.Errorf("variant-less add replicated: %+v", rep.calls)
	}
}

func TestStore_LifecycleReplaceAndClear(t *testing.T) {
	s := NewStore(NewMirror(nil))
	p := &catalog.Product{ID: "7", Name: "Mesa Alta", Price: 120}

	s.Add(p, nil, nil, "", 1)
	if got := ItemCount(s.Lines()); got != 1 {
		t.Fatalf("after add: count %d, want 1", got)
	}

	// Login: server snapshot replaces wholesale, no merge.
	lines := s.ReplaceFromServer([]ServerItem{
		{ID: 1, FixedProductName: "Silla", UnitPriceSnapshot: "80", Quantity: 3},
	})
	if len(lines) != 1 || lines[0].Name != "Silla" || lines[0].Quantity != 3 {
		t.Fatalf("snapshot not authoritative: %+v", lines)
	}

	// Logout clears.
	s.Clear()
	if got := len(s.Lines()); got != 0 {
		t.Errorf("after clear: %d lines, want 0", got)
	}
}

func TestStore_AddEnqueuesVariantMirror(t *testing.T) {
	done := make(chan struct{}, 1)
	rep := &fakeReplicator{done: done}
	m := NewMirror(rep)
	s := NewStore(m)

	p := &catalog.Product{
		ID:    "7",
		Price: 120,
		Variants: []catalog.Variant{
			{ID: 55, Price: 150, Stock: 3, Attributes: map[string]string{"Color": "Blanco"}},
		},
	}
	s.Add(p, &p.Variants[0], nil, "", 2)
	<-done
	m.Close()

	rep.mu.Lock()
	defer rep.mu.Unlock()
	if len(rep.calls) != 1 || rep.calls[0].variantID != 55 {
		t.Errorf("mirror calls: %+v, want one for variant 55", rep.calls)
	}
}
