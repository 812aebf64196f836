package service

import (
	"context"
	"fmt"
	"time"

	"parkhub/internal/entities"
	apperrors "parkhub/internal/errors"
)

// DefaultRecentBookings is the public listing window.
const DefaultRecentBookings = 20

// BookingStore is the append-only record store behind the booking service.
type BookingStore interface {
	Insert(ctx context.Context, record *entities.BookingRecord) (string, error)
	FindRecent(ctx context.Context, limit int) ([]entities.BookingRecord, error)
}

// BookingService appends booking records and lists recent ones. Appends are
// independent of checkout: a payment can succeed without a stored record and
// vice versa.
type BookingService struct {
	store  BookingStore
	sender *SenderService
	now    func() time.Time
}

func NewBookingService(store BookingStore, sender *SenderService) *BookingService {
	return &BookingService{store: store, sender: sender, now: time.Now}
}

// Append validates and stores a booking payload, stamping the server-side
// creation time, and returns the new record's identifier. Incomplete payloads
// are rejected without a write.
func (s *BookingService) Append(ctx context.Context, payload entities.BookingPayload) (string, error) {
	if payload.ParkingID == "" || payload.TotalAmount == 0 || payload.Currency == "" {
		return "", apperrors.BadRequest("Invalid payload")
	}

	record := &entities.BookingRecord{
		BookingPayload: payload,
		CreatedAt:      s.now().UTC(),
	}
	id, err := s.store.Insert(ctx, record)
	if err != nil {
		return "", fmt.Errorf("inserting booking record: %w", err)
	}

	if s.sender != nil {
		s.sender.SendBookingConfirmation(record)
	}
	return id, nil
}

// ListRecent returns the most recently created records, newest first. A
// non-positive limit uses the default window.
func (s *BookingService) ListRecent(ctx context.Context, limit int) ([]entities.BookingRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentBookings
	}
	records, err := s.store.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing booking records: %w", err)
	}
	if records == nil {
		records = []entities.BookingRecord{}
	}
	return records, nil
}
