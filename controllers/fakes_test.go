package controllers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"sort"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/devevent/devevent-api/models"
	"github.com/devevent/devevent-api/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fakeEventStore keeps events in memory and enforces slug uniqueness
// the way the real unique index does.
type fakeEventStore struct {
	events    []models.Event
	insertErr error
	listErr   error
	findErr   error
}

func (f *fakeEventStore) InsertEvent(_ context.Context, event *models.Event) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, e := range f.events {
		if e.Slug == event.Slug {
			return fmt.Errorf("%w: slug %q", store.ErrDuplicateKey, event.Slug)
		}
	}
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeEventStore) ListEvents(_ context.Context) ([]models.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Event, len(f.events))
	copy(out, f.events)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEventStore) FindEventBySlug(_ context.Context, slug string) (*models.Event, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.events {
		if f.events[i].Slug == slug {
			return &f.events[i], nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeEventStore) FindEventByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.events {
		if f.events[i].ID == id {
			return &f.events[i], nil
		}
	}
	return nil, store.ErrNotFound
}

type fakeBookingStore struct {
	bookings  []models.Booking
	insertErr error
}

func (f *fakeBookingStore) InsertBooking(_ context.Context, booking *models.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingStore) ListBookingsByEvent(_ context.Context, eventID primitive.ObjectID) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// fakeUploader returns a canned URL and records delete calls so tests
// can assert on orphan cleanup.
type fakeUploader struct {
	url       string
	uploadErr error
	uploads   int
	deleted   []string
	deleteErr error
}

func (f *fakeUploader) Upload(_ context.Context, _ []byte, folder string) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploads++
	if f.url != "" {
		return f.url, nil
	}
	return "https://res.cloudinary.com/demo/image/upload/v1/" + folder + "/img.png", nil
}

func (f *fakeUploader) Delete(_ context.Context, imageURL string) error {
	f.deleted = append(f.deleted, imageURL)
	return f.deleteErr
}

// tinyPNG is enough bytes to stand in for an uploaded image.
var tinyPNG = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

// multipartBody builds a multipart form with the given text fields and,
// when withImage is set, a small PNG under the "image" key.
func multipartBody(fields map[string]string, withImage bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		_ = w.WriteField(k, v)
	}
	if withImage {
		fw, _ := w.CreateFormFile("image", "event.png")
		_, _ = fw.Write(tinyPNG)
	}
	_ = w.Close()
	return body, w.FormDataContentType()
}

// validEventFields covers all twelve required fields.
func validEventFields() map[string]string {
	return map[string]string{
		"title":       "Go Meetup Nairobi",
		"description": "An evening of Go talks",
		"overview":    "Talks, pizza, networking",
		"venue":       "iHub",
		"location":    "Nairobi",
		"date":        "2026-10-01",
		"time":        "18:00",
		"mode":        "offline",
		"audience":    "developers",
		"organizer":   "Gophers KE",
		"tags":        `["go","meetup"]`,
		"agenda":      `["doors open","talks","networking"]`,
	}
}
