package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devevent/devevent-api/apperror"
	"github.com/devevent/devevent-api/models"
	"github.com/devevent/devevent-api/store"
	"github.com/devevent/devevent-api/validation"
)

// validateReferentialIntegrity checks that the referenced event still
// exists. It runs at booking creation, before anything is persisted.
func validateReferentialIntegrity(ctx context.Context, events store.EventStore, eventID primitive.ObjectID) error {
	_, err := events.FindEventByID(ctx, eventID)
	if errors.Is(err, store.ErrNotFound) {
		return apperror.Referential("referenced event does not exist")
	}
	if err != nil {
		return apperror.Internal("error validating event", err)
	}
	return nil
}

// ---------------- CREATE ----------------

// CreateBooking registers an attendee's interest in an event. The
// booking is only persisted if the event exists at this moment; a later
// event deletion leaves the booking dangling, which is accepted.
func CreateBooking(log *slog.Logger, events store.EventStore, bookings store.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			EventID string `json:"event_id"`
			Email   string `json:"email"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			respondError(c, apperror.Validation("invalid request body: %v", err))
			return
		}

		eventID, err := primitive.ObjectIDFromHex(input.EventID)
		if err != nil {
			respondError(c, apperror.Validation("invalid event id"))
			return
		}

		email, aerr := validation.NormalizeEmail(input.Email)
		if aerr != nil {
			respondError(c, aerr)
			return
		}

		if err := validateReferentialIntegrity(c.Request.Context(), events, eventID); err != nil {
			respondError(c, err)
			return
		}

		now := time.Now()
		booking := models.Booking{
			ID:        primitive.NewObjectID(),
			EventID:   eventID,
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := bookings.InsertBooking(c.Request.Context(), &booking); err != nil {
			log.Error("booking insert failed", "event_id", eventID.Hex(), "err", err)
			respondError(c, apperror.Persistence("Booking Creation Failed", err))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Successfully created booking",
			"booking": booking,
		})
	}
}

// ---------------- LIST ----------------

// ListBookings returns the bookings for the event named by the
// event_id query parameter, newest first.
func ListBookings(log *slog.Logger, bookings store.BookingStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID, err := primitive.ObjectIDFromHex(c.Query("event_id"))
		if err != nil {
			respondError(c, apperror.Validation("invalid event id"))
			return
		}

		all, err := bookings.ListBookingsByEvent(c.Request.Context(), eventID)
		if err != nil {
			log.Error("booking listing failed", "event_id", eventID.Hex(), "err", err)
			respondError(c, apperror.Persistence("Booking fetching failed", err))
			return
		}
		if all == nil {
			all = []models.Booking{}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":  "Bookings fetched successfully",
			"bookings": all,
		})
	}
}
