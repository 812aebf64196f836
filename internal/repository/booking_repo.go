package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"parkhub/internal/entities"
)

// BookingRepository persists booking records in the bookings collection.
// Records are append-only: there is deliberately no update or delete here.
type BookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{collection: db.Collection("bookings")}
}

// Insert stores a new record and returns its assigned identifier.
func (r *BookingRepository) Insert(ctx context.Context, record *entities.BookingRecord) (string, error) {
	result, err := r.collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	record.ID = oid
	return oid.Hex(), nil
}

// FindRecent returns up to limit records, most recently created first.
func (r *BookingRepository) FindRecent(ctx context.Context, limit int) ([]entities.BookingRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []entities.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
