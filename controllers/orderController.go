package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"gloryland/checkout"
	"gloryland/database"
	"gloryland/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")

// CheckoutLine mirrors the client cart payload: id plus quantity. Any
// price the cart displayed stays on the client.
type CheckoutLine struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

func toLines(payload []CheckoutLine) ([]checkout.Line, bool) {
	lines := make([]checkout.Line, 0, len(payload))
	for _, p := range payload {
		if p.ID == "" || p.Quantity < 1 {
			return nil, false
		}
		lines = append(lines, checkout.Line{ItemID: p.ID, Quantity: p.Quantity})
	}
	return lines, true
}

// PlaceOrder handles the authenticated customer checkout. The response is
// 201 with the order header; every failure mode surfaces the same generic
// message with the real reason logged.
func PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var payload []CheckoutLine
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		customer := checkout.Customer{
			ID:    c.GetString("uid"),
			Name:  c.GetString("name"),
			Email: c.GetString("email"),
		}
		finalizeOrder(c, ctx, customer, payload)
	}
}

// PlacePOSOrder is the staff walk-in path: no customer account, order
// completed immediately. Role gating happens in the router.
func PlacePOSOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		var payload []CheckoutLine
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		finalizeOrder(c, ctx, checkout.Customer{}, payload)
	}
}

func finalizeOrder(c *gin.Context, ctx context.Context, customer checkout.Customer, payload []CheckoutLine) {
	if len(payload) == 0 {
		deps.Metrics.OrdersRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	lines, ok := toLines(payload)
	if !ok {
		deps.Metrics.OrdersRejected.Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "every line needs an id and a quantity of at least 1"})
		return
	}

	order, err := deps.Finalizer.Finalize(ctx, customer, lines)
	if err != nil {
		var unknown *checkout.UnknownItemError
		switch {
		case errors.Is(err, checkout.ErrEmptyOrder):
			deps.Metrics.OrdersRejected.Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.As(err, &unknown):
			deps.Metrics.OrdersRejected.Inc()
			log.Printf("checkout rejected, stale cart: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
		default:
			deps.Metrics.OrdersFailed.Inc()
			log.Printf("order creation error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order."})
		}
		return
	}

	deps.Metrics.OrdersPlaced.Inc()
	c.JSON(http.StatusCreated, order)
}

// GetMyOrders returns the caller's orders, newest first, each with its
// items joined in.
func GetMyOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		uid := c.GetString("uid")

		matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: uid}}}}
		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
		lookupStage := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orderItem"},
			{Key: "localField", Value: "order_id"},
			{Key: "foreignField", Value: "order_id"},
			{Key: "as", Value: "items"},
		}}}

		cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, lookupStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		defer cursor.Close(ctx)

		var orders []bson.M
		if err := cursor.All(ctx, &orders); err != nil {
			log.Println("decode my orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetAdminOrders returns every order with its items and the customer name
// for the dashboard.
func GetAdminOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
		lookupItems := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "orderItem"},
			{Key: "localField", Value: "order_id"},
			{Key: "foreignField", Value: "order_id"},
			{Key: "as", Value: "items"},
		}}}
		lookupUser := bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "user"},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "user_id"},
			{Key: "as", Value: "user"},
		}}}
		unwindUser := bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$user"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}}
		projectStage := bson.D{{Key: "$project", Value: bson.D{
			{Key: "order_id", Value: 1},
			{Key: "user_id", Value: 1},
			{Key: "status", Value: 1},
			{Key: "total_price", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "items", Value: 1},
			{Key: "user_name", Value: "$user.name"},
		}}}

		cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{sortStage, lookupItems, lookupUser, unwindUser, projectStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		defer cursor.Close(ctx)

		var orders []bson.M
		if err := cursor.All(ctx, &orders); err != nil {
			log.Println("decode admin orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// UpdateOrderStatus moves a PENDING order to COMPLETED or CANCELLED.
// Terminal states never transition again.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		orderId := c.Param("order_id")
		var body struct {
			Status string `json:"status"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Status != models.StatusCompleted && body.Status != models.StatusCancelled {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if !models.CanTransition(order.Status, body.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order is already " + order.Status})
			return
		}

		updatedAt, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "status", Value: body.Status},
			{Key: "updated_at", Value: updatedAt},
		}}}
		_, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update, options.Update().SetUpsert(false))
		if err != nil {
			log.Println("update order status:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "order status update failed"})
			return
		}

		order.Status = body.Status
		order.Updated_at = updatedAt
		if deps.Publisher != nil {
			if err := deps.Publisher.Publish("orders", "orderStatus", order); err != nil {
				log.Println("order status notification failed:", err)
			}
		}
		c.JSON(http.StatusOK, order)
	}
}
