// Package store is the document-store boundary. Handlers depend on the
// interfaces here so tests can swap in fakes; the Mongo implementation
// lives alongside.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devevent/devevent-api/models"
)

// ErrNotFound is returned by point lookups when no document matches.
var ErrNotFound = errors.New("document not found")

// ErrDuplicateKey is returned when an insert violates a unique index,
// e.g. two events with the same slug.
var ErrDuplicateKey = errors.New("duplicate key")

type EventStore interface {
	// InsertEvent persists a new event. A slug collision yields an
	// error wrapping ErrDuplicateKey.
	InsertEvent(ctx context.Context, event *models.Event) error
	// ListEvents returns all events, newest first.
	ListEvents(ctx context.Context) ([]models.Event, error)
	// FindEventBySlug returns ErrNotFound when the slug matches nothing.
	FindEventBySlug(ctx context.Context, slug string) (*models.Event, error)
	// FindEventByID returns ErrNotFound when the id matches nothing.
	FindEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
}

type BookingStore interface {
	InsertBooking(ctx context.Context, booking *models.Booking) error
	// ListBookingsByEvent returns a single event's bookings, newest first.
	ListBookingsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error)
}
