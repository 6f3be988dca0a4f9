// Package cart implements the per-device cart ledger: an ordered list of
// product/quantity pairs with at most one entry per product. Totals are
// derived on every read; every mutation rewrites the whole persisted ledger
// before returning (last write wins, no diffing).
package cart

import (
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/artistry-gallery/artistry/internal/domain"
	"github.com/artistry-gallery/artistry/internal/store"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ledger is one device's cart. Item order is insertion order; repeat adds
// bump the quantity in place.
type Ledger struct {
	deviceID string
	store    *store.Store

	mu    sync.Mutex
	items []domain.CartItem
}

// Service hands out ledgers by device, loading persisted state on first use.
type Service struct {
	store *store.Store

	mu      sync.Mutex
	ledgers map[string]*Ledger
}

func NewService(st *store.Store) *Service {
	return &Service{store: st, ledgers: make(map[string]*Ledger)}
}

// Ledger returns the cart ledger for the device, restoring it from the store
// on first access. A malformed persisted value is dropped and treated as an
// empty cart.
func (s *Service) Ledger(deviceID string) *Ledger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.ledgers[deviceID]; ok {
		return l
	}

	l := &Ledger{deviceID: deviceID, store: s.store}
	if data, err := s.store.Get(store.BucketCart, deviceID); err == nil && data != nil {
		if err := json.Unmarshal(data, &l.items); err != nil {
			zap.S().Warnf("discarding malformed cart entry for device %s", deviceID)
			_ = s.store.Delete(store.BucketCart, deviceID)
			l.items = nil
		}
	}
	s.ledgers[deviceID] = l
	return l
}

// Add puts one unit of the product into the ledger: a new item at the end,
// or one more unit on the existing item for the same product ID.
func (l *Ledger) Add(p domain.Product) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Product.ID == p.ID {
			l.items[i].Quantity++
			return l.persist()
		}
	}
	l.items = append(l.items, domain.CartItem{Product: p, Quantity: 1})
	return l.persist()
}

// Remove drops the item for the product ID. Absent IDs are a no-op.
func (l *Ledger) Remove(productID int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return l.persist()
		}
	}
	return nil
}

// SetQuantity overwrites the quantity for the product ID. Quantities of zero
// or less remove the item instead.
func (l *Ledger) SetQuantity(productID int64, quantity int) error {
	if quantity <= 0 {
		return l.Remove(productID)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if l.items[i].Product.ID == productID {
			l.items[i].Quantity = quantity
			return l.persist()
		}
	}
	return nil
}

// Clear empties the ledger. Checkout is exactly this: no order record is
// produced anywhere.
func (l *Ledger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = nil
	return l.persist()
}

// Items returns a copy of the ledger in insertion order.
func (l *Ledger) Items() []domain.CartItem {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

// Summary recomputes the derived totals.
func (l *Ledger) Summary() domain.CartSummary {
	l.mu.Lock()
	defer l.mu.Unlock()
	return domain.SummarizeCart(l.items)
}

// persist writes the full ledger under the device key. Callers hold l.mu.
func (l *Ledger) persist() error {
	data, err := json.Marshal(l.items)
	if err != nil {
		return errors.Wrap(err, "serialize cart")
	}
	if err := l.store.Put(store.BucketCart, l.deviceID, data); err != nil {
		return errors.Wrap(err, "persist cart")
	}
	return nil
}
