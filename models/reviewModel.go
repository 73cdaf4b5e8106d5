package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID           primitive.ObjectID `bson:"_id"`
	Review_id    string             `json:"review_id" bson:"review_id"`
	User_id      string             `json:"user_id" bson:"user_id"`
	Menu_item_id *string            `json:"menu_item_id" bson:"menu_item_id" validate:"required"`
	Rating       *int               `json:"rating" validate:"required,min=1,max=5"`
	Comment      *string            `json:"comment"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
}
