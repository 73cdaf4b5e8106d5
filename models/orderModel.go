package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

type Order struct {
	ID          primitive.ObjectID `bson:"_id"`
	Order_id    string             `json:"order_id" bson:"order_id"`
	User_id     *string            `json:"user_id" bson:"user_id"`
	Status      string             `json:"status" validate:"required,eq=PENDING|eq=COMPLETED|eq=CANCELLED"`
	Total_price float64            `json:"total_price" bson:"total_price"`
	Created_at  time.Time          `json:"created_at" bson:"created_at"`
	Updated_at  time.Time          `json:"updated_at" bson:"updated_at"`
}

// OrderItem carries the price captured at order time, copied from the
// catalog. It is immutable once written.
type OrderItem struct {
	ID            primitive.ObjectID `bson:"_id"`
	Order_item_id string             `json:"order_item_id" bson:"order_item_id"`
	Order_id      string             `json:"order_id" bson:"order_id"`
	Menu_item_id  string             `json:"menu_item_id" bson:"menu_item_id"`
	Name          string             `json:"name"`
	Quantity      int                `json:"quantity" validate:"required,min=1"`
	Price         float64            `json:"price"`
	Created_at    time.Time          `json:"created_at" bson:"created_at"`
}

// CanTransition reports whether an order status change is legal.
// COMPLETED and CANCELLED are terminal.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusCompleted || to == StatusCancelled
}
