package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devevent/devevent-api/apperror"
	"github.com/devevent/devevent-api/models"
	"github.com/devevent/devevent-api/store"
	"github.com/devevent/devevent-api/utils"
	"github.com/devevent/devevent-api/validation"
)

// imageFolder is the image store collection all event images land in.
const imageFolder = "DevEvent"

// ---------------- CREATE ----------------

// CreateEvent is the intake pipeline: validate the multipart
// submission, upload the image, insert the event. The two writes are
// not transactional; if the insert fails after a successful upload the
// image is deleted best-effort so it doesn't sit orphaned.
func CreateEvent(log *slog.Logger, events store.EventStore, uploader utils.ImageUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			respondError(c, apperror.Validation("invalid form data: %v", err))
			return
		}

		files := form.File["image"]
		input, aerr := validation.ValidateEventForm(form.Value, len(files) > 0)
		if aerr != nil {
			respondError(c, aerr)
			return
		}

		slug := utils.Slugify(input.Title)
		if slug == "" {
			respondError(c, apperror.Validation("title must contain at least one letter or digit"))
			return
		}

		file, err := files[0].Open()
		if err != nil {
			respondError(c, apperror.Internal("failed to open image file", err))
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			respondError(c, apperror.Internal("failed to read image file", err))
			return
		}

		imageURL, err := uploader.Upload(c.Request.Context(), data, imageFolder)
		if err != nil {
			log.Error("image upload failed", "slug", slug, "err", err)
			respondError(c, apperror.Upstream("image upload failed", err))
			return
		}

		now := time.Now()
		event := models.Event{
			ID:          primitive.NewObjectID(),
			Slug:        slug,
			Title:       input.Title,
			Description: input.Description,
			Overview:    input.Overview,
			Venue:       input.Venue,
			Location:    input.Location,
			Date:        input.Date,
			Time:        input.Time,
			Mode:        input.Mode,
			Audience:    input.Audience,
			Organizer:   input.Organizer,
			Tags:        input.Tags,
			Agenda:      input.Agenda,
			Image:       imageURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		if err := events.InsertEvent(c.Request.Context(), &event); err != nil {
			// The image is already stored; clean it up so the failed
			// insert doesn't leave an orphan behind.
			if delErr := uploader.Delete(c.Request.Context(), imageURL); delErr != nil {
				log.Error("orphaned image cleanup failed", "url", imageURL, "err", delErr)
			}
			if errors.Is(err, store.ErrDuplicateKey) {
				log.Warn("duplicate event slug", "slug", slug)
				respondError(c, apperror.DuplicateSlug(slug, err))
				return
			}
			log.Error("event insert failed", "slug", slug, "err", err)
			respondError(c, apperror.Persistence("Event Creation Failed", err))
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Successfully created event",
			"event":   event,
		})
	}
}

// ---------------- LIST ----------------

// ListEvents returns every event, newest first.
func ListEvents(log *slog.Logger, events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := events.ListEvents(c.Request.Context())
		if err != nil {
			log.Error("event listing failed", "err", err)
			respondError(c, apperror.Persistence("Event fetching failed", err))
			return
		}
		if all == nil {
			all = []models.Event{}
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Events fetched successfully",
			"events":  all,
		})
	}
}

// ---------------- GET BY SLUG ----------------

// GetEventBySlug resolves a slug to exactly one event. Resolution is
// case- and whitespace-insensitive on the input.
func GetEventBySlug(log *slog.Logger, events store.EventStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, ok := utils.NormalizeSlug(c.Param("slug"))
		if !ok {
			respondError(c, apperror.Validation("slug must contain only lowercase letters, numbers, and hyphens"))
			return
		}

		event, err := events.FindEventBySlug(c.Request.Context(), slug)
		if errors.Is(err, store.ErrNotFound) {
			respondError(c, apperror.NotFound("no event found with slug: %s", slug))
			return
		}
		if err != nil {
			log.Error("event lookup failed", "slug", slug, "err", err)
			respondError(c, apperror.Internal("Internal Server Error", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Event fetched successfully",
			"event":   event,
		})
	}
}
