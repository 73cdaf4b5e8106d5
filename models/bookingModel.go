package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingPending   = "PENDING"
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)

type Booking struct {
	ID           primitive.ObjectID `bson:"_id"`
	Booking_id   string             `json:"booking_id" bson:"booking_id"`
	User_id      string             `json:"user_id" bson:"user_id"`
	Booking_type *string            `json:"booking_type" bson:"booking_type" validate:"required"`
	Event_date   *time.Time         `json:"event_date" bson:"event_date" validate:"required"`
	Party_size   *int               `json:"party_size" bson:"party_size" validate:"required,min=1"`
	Notes        *string            `json:"notes"`
	Status       string             `json:"status" validate:"required,eq=PENDING|eq=CONFIRMED|eq=CANCELLED"`
	Created_at   time.Time          `json:"created_at" bson:"created_at"`
	Updated_at   time.Time          `json:"updated_at" bson:"updated_at"`
}
