package reconcile

import (
	"sort"
	"sync"

	"waiterboard/internal/domain"
)

// OrderSet is the station's local view of currently relevant orders. It is
// rebuilt from full snapshots and kept current by incremental events; the
// server stays authoritative, so incoming updates always win.
type OrderSet struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewOrderSet() *OrderSet {
	return &OrderSet{orders: make(map[string]domain.Order)}
}

// ApplySnapshot replaces the whole set with the given snapshot. Orders in a
// terminal status are dropped even if the backend returned them.
func (s *OrderSet) ApplySnapshot(orders []domain.Order) {
	next := make(map[string]domain.Order, len(orders))
	for _, order := range orders {
		if order.Status.Terminal() {
			continue
		}
		next[order.ID] = order
	}
	s.mu.Lock()
	s.orders = next
	s.mu.Unlock()
}

// Apply upserts a single order, last write wins. The set does not second-guess
// status transitions; validity is the server's problem. Terminal statuses
// remove the order from the board.
func (s *OrderSet) Apply(order domain.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.Status.Terminal() {
		delete(s.orders, order.ID)
		return
	}
	s.orders[order.ID] = order
}

func (s *OrderSet) Get(id string) (domain.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[id]
	return order, ok
}

func (s *OrderSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

// Ordered returns the orders grouped ready-first, then in-progress, then
// awaiting payment, oldest first within a bucket so staff serve in arrival
// order.
func (s *OrderSet) Ordered() []domain.Order {
	s.mu.RLock()
	out := make([]domain.Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		bi, bj := out[i].Status.Bucket(), out[j].Status.Bucket()
		if bi != bj {
			return bi < bj
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
