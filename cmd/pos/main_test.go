package main

import (
	"testing"

	"gloryland/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quietNotifier struct{}

func (quietNotifier) Success(string) {}
func (quietNotifier) Error(string)   {}

func newTestStore(t *testing.T) *cart.Store {
	t.Helper()
	storage, err := cart.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store, err := cart.NewStore(storage, quietNotifier{})
	require.NoError(t, err)
	return store
}

func TestRunAddRejectsBadPrice(t *testing.T) {
	store := newTestStore(t)

	err := run(store, "", []string{"add", "A", "Jollof Rice", "seven"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `bad price "seven"`)
	assert.Empty(t, store.Lines(), "a rejected command must not touch the cart")
}

func TestRunAddAcceptsDisplayPrice(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, run(store, "", []string{"add", "A", "Jollof Rice", "7.50"}))

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7.50, lines[0].Price)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRunQtyRejectsBadQuantity(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, run(store, "", []string{"add", "A", "Jollof Rice"}))

	err := run(store, "", []string{"qty", "A", "two"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `bad quantity "two"`)
}

func TestRunUnknownCommandIsUsageError(t *testing.T) {
	store := newTestStore(t)

	assert.ErrorIs(t, run(store, "", []string{"refund"}), errUsage)
	assert.ErrorIs(t, run(store, "", nil), errUsage)
}
