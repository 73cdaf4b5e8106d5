package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem is the authoritative catalog entry. Its Price is the only value
// ever used to compute money; client-supplied prices are advisory display
// copies and are discarded at checkout.
type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	Menu_item_id string             `json:"menu_item_id" bson:"menu_item_id"`
	Name         *string            `json:"name" validate:"required,min=2,max=100"`
	Description  *string            `json:"description"`
	Price        *float64           `json:"price" validate:"required,min=0"`
	Category     *string            `json:"category" validate:"required"`
	Image_url    *string            `json:"image_url" bson:"image_url"`
	Is_available *bool              `json:"is_available" bson:"is_available"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
}
