package checkout

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder is returned when a checkout is attempted with no lines.
var ErrEmptyOrder = errors.New("order has no items")

// UnknownItemError marks a line whose id has no matching catalog entry,
// typically a stale cart referencing a deleted menu item. The whole order
// is rejected; nothing is written.
type UnknownItemError struct {
	ItemID string
}

func (e *UnknownItemError) Error() string {
	return fmt.Sprintf("menu item %q not found", e.ItemID)
}

// PersistenceError wraps a failed catalog read or a failed order
// transaction. The transaction is all-or-nothing, so after this error no
// order rows are observable.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("order persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
