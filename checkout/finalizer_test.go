package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"gloryland/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	items map[string]models.MenuItem
	err   error
}

func (m *mockCatalog) FindByIDs(_ context.Context, ids []string) ([]models.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	var found []models.MenuItem
	for _, id := range ids {
		if item, ok := m.items[id]; ok {
			found = append(found, item)
		}
	}
	return found, nil
}

type mockOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
	items  []models.OrderItem
	err    error
}

func (m *mockOrderStore) CreateOrder(_ context.Context, order models.Order, items []models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		// Transactional contract: a failed commit leaves nothing behind,
		// even if the header insert had already happened inside the tx.
		return m.err
	}
	m.orders = append(m.orders, order)
	m.items = append(m.items, items...)
	return nil
}

func (m *mockOrderStore) count() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders), len(m.items)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (m *mockPublisher) Publish(_ string, event string, _ interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, event)
	return nil
}

func (m *mockPublisher) seen() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.events...)
}

type mockMailer struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (m *mockMailer) Send(to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func (m *mockMailer) recipients() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.sent...)
}

func menuItem(id, name string, price float64) models.MenuItem {
	available := true
	return models.MenuItem{
		Menu_item_id: id,
		Name:         &name,
		Price:        &price,
		Is_available: &available,
	}
}

func newTestCatalog() *mockCatalog {
	return &mockCatalog{items: map[string]models.MenuItem{
		"A": menuItem("A", "Jollof Rice", 7.50),
		"B": menuItem("B", "Meat Pie", 4.00),
	}}
}

func customer() Customer {
	return Customer{ID: "user-1", Name: "Ada", Email: "ada@example.com"}
}

func TestFinalizeEmptyOrderRejected(t *testing.T) {
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)

	order, err := f.Finalize(context.Background(), customer(), nil)

	require.ErrorIs(t, err, ErrEmptyOrder)
	assert.Nil(t, order)
	orders, items := store.count()
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestFinalizeUsesAuthoritativePrice(t *testing.T) {
	// The cart displayed 5.00 for item A, but the catalog price moved to
	// 7.50 since the item was added. The total must reflect the catalog.
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)

	order, err := f.Finalize(context.Background(), customer(), []Line{{ItemID: "A", Quantity: 2}})

	require.NoError(t, err)
	assert.Equal(t, 15.00, order.Total_price)
	assert.Equal(t, models.StatusPending, order.Status)
	require.NotNil(t, order.User_id)
	assert.Equal(t, "user-1", *order.User_id)

	store.mu.Lock()
	defer store.mu.Unlock()
	require.Len(t, store.items, 1)
	assert.Equal(t, 7.50, store.items[0].Price)
	assert.Equal(t, 2, store.items[0].Quantity)
	assert.Equal(t, "Jollof Rice", store.items[0].Name)
}

func TestFinalizeIdempotentTotals(t *testing.T) {
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)
	lines := []Line{{ItemID: "A", Quantity: 2}, {ItemID: "B", Quantity: 1}}

	first, err := f.Finalize(context.Background(), customer(), lines)
	require.NoError(t, err)
	second, err := f.Finalize(context.Background(), customer(), lines)
	require.NoError(t, err)

	assert.Equal(t, first.Total_price, second.Total_price)
	assert.NotEqual(t, first.Order_id, second.Order_id)
	orders, items := store.count()
	assert.Equal(t, 2, orders)
	assert.Equal(t, 4, items)
}

func TestFinalizeUnknownItemFailsWhole(t *testing.T) {
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)
	lines := []Line{{ItemID: "A", Quantity: 1}, {ItemID: "ZZZ-missing", Quantity: 1}}

	order, err := f.Finalize(context.Background(), customer(), lines)

	var unknown *UnknownItemError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "ZZZ-missing", unknown.ItemID)
	assert.Nil(t, order)
	orders, items := store.count()
	assert.Zero(t, orders, "partial orders must never be created")
	assert.Zero(t, items)
}

func TestFinalizePersistenceFailureLeavesNothing(t *testing.T) {
	store := &mockOrderStore{err: errors.New("connection reset")}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)

	order, err := f.Finalize(context.Background(), customer(), []Line{{ItemID: "B", Quantity: 1}})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Nil(t, order)
	orders, items := store.count()
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestFinalizeCatalogReadFailure(t *testing.T) {
	f := NewFinalizer(&mockCatalog{err: errors.New("server selection timeout")}, &mockOrderStore{}, nil, nil)

	_, err := f.Finalize(context.Background(), customer(), []Line{{ItemID: "A", Quantity: 1}})

	var pe *PersistenceError
	require.ErrorAs(t, err, &pe)
}

func TestFinalizeWalkInCompletesImmediately(t *testing.T) {
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)

	order, err := f.Finalize(context.Background(), Customer{}, []Line{{ItemID: "B", Quantity: 3}})

	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, order.Status)
	assert.Equal(t, 12.00, order.Total_price)
	assert.Nil(t, order.User_id)
}

func TestFinalizeRepeatedLineIDsAreSummed(t *testing.T) {
	store := &mockOrderStore{}
	f := NewFinalizer(newTestCatalog(), store, nil, nil)
	lines := []Line{{ItemID: "A", Quantity: 1}, {ItemID: "A", Quantity: 2}}

	order, err := f.Finalize(context.Background(), customer(), lines)

	require.NoError(t, err)
	assert.Equal(t, 22.50, order.Total_price)
	_, items := store.count()
	assert.Equal(t, 2, items)
}

func TestFinalizeDispatchesSideEffects(t *testing.T) {
	store := &mockOrderStore{}
	pub := &mockPublisher{}
	mailer := &mockMailer{}
	f := NewFinalizer(newTestCatalog(), store, pub, mailer)

	_, err := f.Finalize(context.Background(), customer(), []Line{{ItemID: "A", Quantity: 1}})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(pub.seen()) == 1 && len(mailer.recipients()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"newOrder"}, pub.seen())
	assert.Equal(t, []string{"ada@example.com"}, mailer.recipients())
}

func TestFinalizeSideEffectFailuresAreSwallowed(t *testing.T) {
	store := &mockOrderStore{}
	pub := &mockPublisher{err: errors.New("broker down")}
	mailer := &mockMailer{err: errors.New("smtp down")}
	f := NewFinalizer(newTestCatalog(), store, pub, mailer)

	order, err := f.Finalize(context.Background(), customer(), []Line{{ItemID: "A", Quantity: 1}})

	require.NoError(t, err, "notification and email failures must not fail a committed order")
	require.NotNil(t, order)
	orders, _ := store.count()
	assert.Equal(t, 1, orders)
}

func TestFinalizeWalkInSkipsEmail(t *testing.T) {
	store := &mockOrderStore{}
	pub := &mockPublisher{}
	mailer := &mockMailer{}
	f := NewFinalizer(newTestCatalog(), store, pub, mailer)

	_, err := f.Finalize(context.Background(), Customer{}, []Line{{ItemID: "B", Quantity: 1}})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(pub.seen()) == 1
	}, time.Second, 10*time.Millisecond)
	assert.Empty(t, mailer.recipients())
}
