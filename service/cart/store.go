package cart

import (
	"sync"

	"mobilia.GO/service/catalog"
)

// Store holds the session's local cart state. Local state is authoritative
// for what the user sees; the mirror replicates mutations to the backend
// best-effort after each local commit.
type Store struct {
	mu     sync.Mutex
	lines  []Line
	mirror *Mirror
}

func NewStore(mirror *Mirror) *Store {
	return &Store{mirror: mirror}
}

// Lines returns a copy of the current cart.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneLines(s.lines)
}

func (s *Store) Add(p *catalog.Product, v *catalog.Variant, selectedColor *catalog.ColorOption, selectedSize string, quantity int) []Line {
	s.mu.Lock()
	s.lines = Add(s.lines, p, v, selectedColor, selectedSize, quantity)
	out := cloneLines(s.lines)
	s.mu.Unlock()

	// Replication happens after the local update committed.
	if v != nil {
		vid := v.ID
		s.mirror.EnqueueAdd(&vid, quantity)
	}
	return out
}

func (s *Store) UpdateQuantity(cartItemID string, delta int) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = UpdateQuantity(s.lines, cartItemID, delta)
	return cloneLines(s.lines)
}

func (s *Store) Remove(cartItemID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = Remove(s.lines, cartItemID)
	return cloneLines(s.lines)
}

// ReplaceFromServer swaps in a full server snapshot (login). Last fetch wins;
// nothing is merged.
func (s *Store) ReplaceFromServer(items []ServerItem) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = LinesFromServer(items)
	return cloneLines(s.lines)
}

// Clear empties the cart (logout).
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}
