package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}}
}

func (m *memStorage) Read(key string) ([]byte, error) {
	raw, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return raw, nil
}

func (m *memStorage) Write(key string, value []byte) error {
	m.data[key] = append([]byte(nil), value...)
	return nil
}

type silentNotifier struct {
	successes []string
	errors    []string
}

func (n *silentNotifier) Success(msg string) { n.successes = append(n.successes, msg) }
func (n *silentNotifier) Error(msg string)   { n.errors = append(n.errors, msg) }

func jollof() Line {
	return Line{ItemID: "A", Name: "Jollof Rice", Price: 5.00}
}

func TestAddItemMergesByID(t *testing.T) {
	store, err := NewStore(newMemStorage(), &silentNotifier{})
	require.NoError(t, err)

	store.AddItem(jollof())
	store.AddItem(jollof())

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemAcknowledges(t *testing.T) {
	notify := &silentNotifier{}
	store, err := NewStore(newMemStorage(), notify)
	require.NoError(t, err)

	store.AddItem(jollof())
	store.AddItem(jollof())

	require.Len(t, notify.successes, 2)
	assert.Equal(t, "Jollof Rice added to cart.", notify.successes[0])
	assert.Equal(t, "Jollof Rice quantity updated in cart.", notify.successes[1])
}

func TestUpdateQuantitySetsExactly(t *testing.T) {
	store, err := NewStore(newMemStorage(), &silentNotifier{})
	require.NoError(t, err)
	store.AddItem(jollof())

	store.UpdateQuantity("A", 7)

	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestQuantityFloorRemovesLine(t *testing.T) {
	store, err := NewStore(newMemStorage(), &silentNotifier{})
	require.NoError(t, err)

	store.AddItem(jollof())
	store.UpdateQuantity("A", 0)
	assert.Empty(t, store.Lines())

	store.AddItem(jollof())
	store.UpdateQuantity("A", -3)
	assert.Empty(t, store.Lines())
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	notify := &silentNotifier{}
	store, err := NewStore(newMemStorage(), notify)
	require.NoError(t, err)
	store.AddItem(jollof())

	store.RemoveItem("nope")

	assert.Len(t, store.Lines(), 1)
	assert.Empty(t, notify.errors)
}

func TestClearEmptiesCart(t *testing.T) {
	store, err := NewStore(newMemStorage(), &silentNotifier{})
	require.NoError(t, err)
	store.AddItem(jollof())
	store.AddItem(Line{ItemID: "B", Name: "Meat Pie", Price: 4.00})

	store.Clear()

	assert.Empty(t, store.Lines())
}

func TestReloadReconstructsIdenticalState(t *testing.T) {
	storage := newMemStorage()

	store, err := NewStore(storage, &silentNotifier{})
	require.NoError(t, err)
	store.AddItem(jollof())
	store.AddItem(jollof())
	store.AddItem(Line{ItemID: "B", Name: "Meat Pie", Price: 4.00})
	store.UpdateQuantity("B", 5)

	reloaded, err := NewStore(storage, &silentNotifier{})
	require.NoError(t, err)
	assert.Equal(t, store.Lines(), reloaded.Lines())
}

func TestFileStorageRoundTrip(t *testing.T) {
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read(StorageKey)
	require.ErrorIs(t, err, ErrNotFound)

	store, err := NewStore(storage, &silentNotifier{})
	require.NoError(t, err)
	store.AddItem(jollof())

	reloaded, err := NewStore(storage, &silentNotifier{})
	require.NoError(t, err)
	assert.Equal(t, store.Lines(), reloaded.Lines())
}

func TestPebbleStorageRoundTrip(t *testing.T) {
	storage, err := NewPebbleStorage(t.TempDir())
	require.NoError(t, err)
	defer storage.Close()

	_, err = storage.Read(StorageKey)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, storage.Write(StorageKey, []byte(`[]`)))
	raw, err := storage.Read(StorageKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), raw)
}

func TestCorruptStateSurfacesOnLoad(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Write(StorageKey, []byte("{not json")))

	_, err := NewStore(storage, &silentNotifier{})
	assert.Error(t, err)
}
