package repositories

import (
	"context"
	"sync"

	"github.com/mkurbatov/gw-exchange-front/internal/models"
)

// OrderStore keeps in-flight orders in memory keyed by order number. Durable
// order state lives in the exchange backend; this store only tracks orders
// the gateway is currently walking through the payment workflow.
type OrderStore struct {
	mu     sync.RWMutex
	orders map[string]*models.Order
}

// NewOrderStore creates an empty order store
func NewOrderStore() *OrderStore {
	return &OrderStore{
		orders: make(map[string]*models.Order),
	}
}

// Save stores a snapshot of the order
func (s *OrderStore) Save(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *order
	s.orders[order.Number] = &cp
	return nil
}

// Get returns a copy of the order, or nil when unknown
func (s *OrderStore) Get(ctx context.Context, number string) (*models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order, ok := s.orders[number]
	if !ok {
		return nil, nil
	}

	cp := *order
	return &cp, nil
}
