// Package cart is the client-resident pending selection: the POS terminal
// and any other ordering client keep their cart here, not on the server.
// Prices carried on a Line are display snapshots only; checkout re-derives
// every price from the catalog.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
)

// StorageKey is the fixed key the serialized cart lives under.
const StorageKey = "cart-storage"

// ErrNotFound is returned by a Storage backend when the key has never
// been written. The store treats it as an empty cart.
var ErrNotFound = errors.New("cart: key not found")

// Line is one pending selection. Name, Price and Image are denormalized
// snapshots for rendering; they are never authoritative.
type Line struct {
	ItemID   string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

// Storage is a local key-value store. Writes must be durable before the
// next read so a restart reconstructs identical state.
type Storage interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}

// Notifier surfaces user-visible acknowledgments for cart mutations.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes acknowledgments to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Println(msg) }
func (LogNotifier) Error(msg string)   { log.Println(msg) }

// Store holds the pending selection for one logical owner. It is an
// injected instance, not a global, so isolated stores can coexist.
// Concurrent owners racing on the same storage key are last-write-wins.
type Store struct {
	storage Storage
	notify  Notifier
	lines   []Line
}

// NewStore loads any previously persisted cart from storage. A missing
// key yields an empty cart.
func NewStore(storage Storage, notify Notifier) (*Store, error) {
	if notify == nil {
		notify = LogNotifier{}
	}
	s := &Store{storage: storage, notify: notify}

	raw, err := storage.Read(StorageKey)
	if errors.Is(err, ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart: load failed: %w", err)
	}
	if err := json.Unmarshal(raw, &s.lines); err != nil {
		return nil, fmt.Errorf("cart: stored state is corrupt: %w", err)
	}
	return s, nil
}

// AddItem inserts the item with quantity 1, or increments the quantity if
// the item is already in the cart. There is at most one line per item id.
func (s *Store) AddItem(item Line) {
	for i := range s.lines {
		if s.lines[i].ItemID == item.ItemID {
			s.lines[i].Quantity++
			s.persist()
			s.notify.Success(fmt.Sprintf("%s quantity updated in cart.", item.Name))
			return
		}
	}
	item.Quantity = 1
	s.lines = append(s.lines, item)
	s.persist()
	s.notify.Success(fmt.Sprintf("%s added to cart.", item.Name))
}

// RemoveItem deletes the line if present; an unknown id is a no-op.
func (s *Store) RemoveItem(itemID string) {
	for i, line := range s.lines {
		if line.ItemID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			s.notify.Error("Item removed from cart.")
			return
		}
	}
}

// UpdateQuantity sets the quantity exactly. A quantity below 1 removes
// the line; any ceiling is enforced at checkout, not here.
func (s *Store) UpdateQuantity(itemID string, quantity int) {
	if quantity < 1 {
		s.RemoveItem(itemID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ItemID == itemID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear() {
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the current selection.
func (s *Store) Lines() []Line {
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Mutations never surface errors by contract, so a failed write is logged
// and the in-memory state stays ahead of storage until the next mutation.
func (s *Store) persist() {
	raw, err := json.Marshal(s.lines)
	if err != nil {
		log.Printf("cart: marshal failed: %v", err)
		return
	}
	if err := s.storage.Write(StorageKey, raw); err != nil {
		log.Printf("cart: persist failed: %v", err)
	}
}
