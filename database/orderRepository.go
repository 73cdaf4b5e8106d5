package database

import (
	"context"

	"gloryland/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepo resolves menu items for checkout in one batch read.
type CatalogRepo struct {
	coll *mongo.Collection
}

func NewCatalogRepo(client *mongo.Client) *CatalogRepo {
	return &CatalogRepo{coll: OpenCollection(client, "menuItem")}
}

func (r *CatalogRepo) FindByIDs(ctx context.Context, ids []string) ([]models.MenuItem, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"menu_item_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// OrderRepo commits the order aggregate. Header and items go through one
// session transaction so a failure leaves no rows behind.
type OrderRepo struct {
	client     *mongo.Client
	orders     *mongo.Collection
	orderItems *mongo.Collection
}

func NewOrderRepo(client *mongo.Client) *OrderRepo {
	return &OrderRepo{
		client:     client,
		orders:     OpenCollection(client, "order"),
		orderItems: OpenCollection(client, "orderItem"),
	}
}

func (r *OrderRepo) CreateOrder(ctx context.Context, order models.Order, items []models.OrderItem) error {
	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := r.orders.InsertOne(sc, order); err != nil {
			return nil, err
		}
		docs := make([]interface{}, 0, len(items))
		for _, item := range items {
			docs = append(docs, item)
		}
		if _, err := r.orderItems.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		return nil, nil
	})
	return err
}
