package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devevent/devevent-api/config"
	"github.com/devevent/devevent-api/models"
)

const (
	eventsCollection   = "events"
	bookingsCollection = "bookings"
)

// Mongo implements EventStore and BookingStore on a MongoDB database.
// The client is dialed lazily on first use; a failed dial fails only
// that request and the next caller dials again.
type Mongo struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
}

func NewMongo(cfg *config.Config) *Mongo {
	return &Mongo{uri: cfg.MongoURI, dbName: cfg.DBName}
}

// db returns the database handle, connecting if needed.
func (m *Mongo) db(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client.Database(m.dbName), nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("could not connect to mongodb: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("could not reach mongodb: %w", err)
	}

	m.client = client
	return m.client.Database(m.dbName), nil
}

// EnsureIndexes creates the unique slug index on events and the
// event_id index on bookings. Safe to call on every startup.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	db, err := m.db(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err = db.Collection(eventsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("could not create slug index: %w", err)
	}

	_, err = db.Collection(bookingsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "event_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("could not create event_id index: %w", err)
	}

	return nil
}

// Ping reports whether the store is reachable.
func (m *Mongo) Ping(ctx context.Context) error {
	_, err := m.db(ctx)
	return err
}

// Disconnect closes the client if one was ever dialed.
func (m *Mongo) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}

func (m *Mongo) InsertEvent(ctx context.Context, event *models.Event) error {
	db, err := m.db(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := db.Collection(eventsCollection).InsertOne(ctx, event); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (m *Mongo) ListEvents(ctx context.Context) ([]models.Event, error) {
	db, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.Collection(eventsCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (m *Mongo) FindEventBySlug(ctx context.Context, slug string) (*models.Event, error) {
	return m.findEvent(ctx, bson.M{"slug": slug})
}

func (m *Mongo) FindEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	return m.findEvent(ctx, bson.M{"_id": id})
}

func (m *Mongo) findEvent(ctx context.Context, filter bson.M) (*models.Event, error) {
	db, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var event models.Event
	err = db.Collection(eventsCollection).FindOne(ctx, filter).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (m *Mongo) InsertBooking(ctx context.Context, booking *models.Booking) error {
	db, err := m.db(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := db.Collection(bookingsCollection).InsertOne(ctx, booking); err != nil {
		return translateWriteError(err)
	}
	return nil
}

func (m *Mongo) ListBookingsByEvent(ctx context.Context, eventID primitive.ObjectID) ([]models.Booking, error) {
	db, err := m.db(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := db.Collection(bookingsCollection).Find(ctx, bson.M{"event_id": eventID}, opts)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// translateWriteError maps a unique-index violation to ErrDuplicateKey
// so callers don't depend on driver error types.
func translateWriteError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	}
	return err
}
