package checkout

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"gloryland/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Line is one client-proposed (item, quantity) pair. Any price the client
// displayed alongside it never reaches this package.
type Line struct {
	ItemID   string
	Quantity int
}

// Customer identifies who placed the order. The zero value means a
// walk-in/POS order: no user id, no confirmation email, and the order is
// completed immediately instead of starting at PENDING.
type Customer struct {
	ID    string
	Name  string
	Email string
}

func (c Customer) walkIn() bool { return c.ID == "" }

// Catalog resolves menu item ids in one batch read.
type Catalog interface {
	FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error)
}

// OrderStore commits an order header and its items in one transaction:
// either every row is visible afterwards or none are.
type OrderStore interface {
	CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) error
}

// Publisher is the fire-and-forget notification channel.
type Publisher interface {
	Publish(channel, event string, payload interface{}) error
}

// Mailer sends transactional email.
type Mailer interface {
	Send(to, subject, body string) error
}

// Finalizer converts a client-proposed line list into a trustworthy,
// persisted order. It re-derives every price from the catalog.
type Finalizer struct {
	catalog Catalog
	orders  OrderStore
	pub     Publisher
	mailer  Mailer
}

// NewFinalizer wires the finalizer's collaborators. pub and mailer may be
// nil; side effects are then skipped.
func NewFinalizer(catalog Catalog, orders OrderStore, pub Publisher, mailer Mailer) *Finalizer {
	return &Finalizer{catalog: catalog, orders: orders, pub: pub, mailer: mailer}
}

// Finalize validates the proposed lines, recomputes the total from
// authoritative catalog prices and atomically commits the order with its
// items. On success the created order header is returned and a
// notification plus a confirmation email are dispatched best-effort.
func (f *Finalizer) Finalize(ctx context.Context, customer Customer, lines []Line) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	ids := distinctIDs(lines)
	menuItems, err := f.catalog.FindByIDs(ctx, ids)
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	byID := make(map[string]models.MenuItem, len(menuItems))
	for _, item := range menuItems {
		byID[item.Menu_item_id] = item
	}

	var total float64
	for _, line := range lines {
		item, ok := byID[line.ItemID]
		if !ok {
			return nil, &UnknownItemError{ItemID: line.ItemID}
		}
		total += *item.Price * float64(line.Quantity)
	}
	total = toFixed(total, 2)

	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))

	var order models.Order
	order.ID = primitive.NewObjectID()
	order.Order_id = order.ID.Hex()
	order.Total_price = total
	order.Status = models.StatusPending
	if customer.walkIn() {
		order.Status = models.StatusCompleted
	} else {
		uid := customer.ID
		order.User_id = &uid
	}
	order.Created_at = now
	order.Updated_at = now

	orderItems := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		item := byID[line.ItemID]
		var orderItem models.OrderItem
		orderItem.ID = primitive.NewObjectID()
		orderItem.Order_item_id = orderItem.ID.Hex()
		orderItem.Order_id = order.Order_id
		orderItem.Menu_item_id = line.ItemID
		orderItem.Name = *item.Name
		orderItem.Quantity = line.Quantity
		orderItem.Price = toFixed(*item.Price, 2)
		orderItem.Created_at = now
		orderItems = append(orderItems, orderItem)
	}

	if err := f.orders.CreateOrder(ctx, order, orderItems); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	// The order is durable at this point. Notification and email are
	// best-effort and must never fail an already-committed order.
	go f.dispatchSideEffects(order, customer)

	return &order, nil
}

func (f *Finalizer) dispatchSideEffects(order models.Order, customer Customer) {
	if f.pub != nil {
		if err := f.pub.Publish("orders", "newOrder", order); err != nil {
			log.Printf("order %s: notification publish failed: %v", order.Order_id, err)
		}
	}
	if f.mailer != nil && customer.Email != "" {
		body := confirmationBody(order, customer)
		if err := f.mailer.Send(customer.Email, "Your Gloryland order", body); err != nil {
			log.Printf("order %s: confirmation email failed: %v", order.Order_id, err)
		}
	}
}

func confirmationBody(order models.Order, customer Customer) string {
	name := customer.Name
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s,\n\nThanks for your order %s.\nTotal: $%.2f\n\nWe will let you know when it is ready.\n",
		name, order.Order_id, order.Total_price)
}

func distinctIDs(lines []Line) []string {
	seen := make(map[string]struct{}, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line.ItemID]; ok {
			continue
		}
		seen[line.ItemID] = struct{}{}
		ids = append(ids, line.ItemID)
	}
	return ids
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func toFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}
