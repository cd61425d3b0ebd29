// Package merchant provides the HTTP API of the demo shop built on the
// checkout gateway client.
package merchant

import (
	"sync"
	"time"
)

// Order tracks one shop order and its gateway session.
type Order struct {
	Reference   string    `json:"reference"`
	RequestID   string    `json:"requestId"`
	ProcessURL  string    `json:"processUrl"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderStore is an in-memory order index keyed by reference. Safe for
// concurrent use.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*Order
}

// NewOrderStore creates an empty store.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: make(map[string]*Order)}
}

// Put stores or replaces an order.
func (s *OrderStore) Put(order *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.Reference] = order
}

// Get returns the order for reference, or nil.
func (s *OrderStore) Get(reference string) *Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders[reference]
}

// SetStatus updates the recorded status of an order.
func (s *OrderStore) SetStatus(reference, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.orders[reference]; ok {
		order.Status = status
	}
}

// List returns all orders in unspecified order.
func (s *OrderStore) List() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Order, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order)
	}
	return out
}
