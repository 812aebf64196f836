package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkhub/internal/entities"
	apperrors "parkhub/internal/errors"
)

type fakeBookingStore struct {
	records   []entities.BookingRecord
	lastLimit int
	failWith  error
}

func (f *fakeBookingStore) Insert(ctx context.Context, record *entities.BookingRecord) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.records = append(f.records, *record)
	return fmt.Sprintf("id-%d", len(f.records)), nil
}

func (f *fakeBookingStore) FindRecent(ctx context.Context, limit int) ([]entities.BookingRecord, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.lastLimit = limit
	var out []entities.BookingRecord
	for i := len(f.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.records[i])
	}
	return out, nil
}

func validPayload() entities.BookingPayload {
	return entities.BookingPayload{
		ParkingID:     "ldn-city-center",
		ParkingName:   "City Center Smart Parking",
		City:          "London",
		Country:       "United Kingdom",
		ArrivalTime:   "2026-09-01T10:00",
		DurationHours: 2,
		BaseAmount:    17,
		LateFeeAmount: 6.8,
		TotalAmount:   23.8,
		Currency:      entities.CurrencyGBP,
	}
}

func TestAppend_StampsCreationTimeAndReturnsID(t *testing.T) {
	store := &fakeBookingStore{}
	svc := NewBookingService(store, nil)
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	id, err := svc.Append(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, "id-1", id)
	require.Len(t, store.records, 1)
	assert.Equal(t, now, store.records[0].CreatedAt)
	assert.Equal(t, "ldn-city-center", store.records[0].ParkingID)
}

func TestAppend_RejectsIncompletePayloadWithoutWrite(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entities.BookingPayload)
	}{
		{"missing parkingId", func(p *entities.BookingPayload) { p.ParkingID = "" }},
		{"missing totalAmount", func(p *entities.BookingPayload) { p.TotalAmount = 0 }},
		{"missing currency", func(p *entities.BookingPayload) { p.Currency = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			svc := NewBookingService(store, nil)

			payload := validPayload()
			tt.mutate(&payload)
			_, err := svc.Append(context.Background(), payload)

			var httpErr *apperrors.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, 400, httpErr.Code)
			assert.Empty(t, store.records)
		})
	}
}

func TestListRecent_NewestFirstRoundTrip(t *testing.T) {
	store := &fakeBookingStore{}
	svc := NewBookingService(store, nil)

	first := validPayload()
	second := validPayload()
	second.ParkingID = "berlin-hbf"

	_, err := svc.Append(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.Append(context.Background(), second)
	require.NoError(t, err)

	records, err := svc.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "berlin-hbf", records[0].ParkingID)
	assert.False(t, records[0].CreatedAt.IsZero())
}

func TestListRecent_DefaultsLimitAndNeverReturnsNil(t *testing.T) {
	store := &fakeBookingStore{}
	svc := NewBookingService(store, nil)

	records, err := svc.ListRecent(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, DefaultRecentBookings, store.lastLimit)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListRecent_WrapsStoreErrors(t *testing.T) {
	svc := NewBookingService(&fakeBookingStore{failWith: errors.New("connection reset")}, nil)

	_, err := svc.ListRecent(context.Background(), 20)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing booking records")
}
