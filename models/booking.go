package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking holds a weak reference to its event: the event's existence is
// checked at creation time, and a booking is never mutated afterwards.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   primitive.ObjectID `bson:"event_id" json:"event_id"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
