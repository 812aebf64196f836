package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkhub/internal/api"
	"parkhub/internal/entities"
	"parkhub/internal/service"
)

type memoryBookingStore struct {
	records []entities.BookingRecord
}

func (m *memoryBookingStore) Insert(ctx context.Context, record *entities.BookingRecord) (string, error) {
	m.records = append(m.records, *record)
	return fmt.Sprintf("id-%d", len(m.records)), nil
}

func (m *memoryBookingStore) FindRecent(ctx context.Context, limit int) ([]entities.BookingRecord, error) {
	var out []entities.BookingRecord
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

func bookingBody(t *testing.T, mutate func(map[string]any)) *bytes.Buffer {
	t.Helper()
	payload := map[string]any{
		"parkingId":     "ldn-city-center",
		"parkingName":   "City Center Smart Parking",
		"city":          "London",
		"country":       "United Kingdom",
		"address":       "1 Bishopsgate, London EC2N 3AQ",
		"arrivalTime":   time.Now().Add(2 * time.Hour).Format("2006-01-02T15:04"),
		"durationHours": 2,
		"baseAmount":    17.0,
		"lateFeeAmount": 0.0,
		"totalAmount":   17.0,
		"currency":      "gbp",
	}
	if mutate != nil {
		mutate(payload)
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestBookingEndpoints_CreateThenListRoundTrip(t *testing.T) {
	handler := api.NewBookingHandler(service.NewBookingService(&memoryBookingStore{}, nil))

	post := httptest.NewRequest(http.MethodPost, "/api/bookings", bookingBody(t, nil))
	postRec := httptest.NewRecorder()
	handler.CreateBooking(postRec, post)

	require.Equal(t, http.StatusCreated, postRec.Code)
	var created api.CreateBookingResponse
	require.NoError(t, json.NewDecoder(postRec.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)

	get := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	getRec := httptest.NewRecorder()
	handler.ListBookings(getRec, get)

	require.Equal(t, http.StatusOK, getRec.Code)
	var listed api.BookingsResponse
	require.NoError(t, json.NewDecoder(getRec.Body).Decode(&listed))
	require.Len(t, listed.Bookings, 1)
	assert.Equal(t, "ldn-city-center", listed.Bookings[0].ParkingID)
	assert.False(t, listed.Bookings[0].CreatedAt.IsZero(), "server must stamp createdAt")
}

func TestBookingEndpoints_NewestRecordListedFirst(t *testing.T) {
	handler := api.NewBookingHandler(service.NewBookingService(&memoryBookingStore{}, nil))

	for _, parkingID := range []string{"first", "second", "third"} {
		id := parkingID
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", bookingBody(t, func(p map[string]any) {
			p["parkingId"] = id
		}))
		handler.CreateBooking(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	getRec := httptest.NewRecorder()
	handler.ListBookings(getRec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	var listed api.BookingsResponse
	require.NoError(t, json.NewDecoder(getRec.Body).Decode(&listed))
	require.Len(t, listed.Bookings, 3)
	assert.Equal(t, "third", listed.Bookings[0].ParkingID)
}

func TestCreateBooking_IncompletePayloadIs400(t *testing.T) {
	for _, field := range []string{"parkingId", "totalAmount", "currency"} {
		missing := field
		t.Run("missing "+missing, func(t *testing.T) {
			store := &memoryBookingStore{}
			handler := api.NewBookingHandler(service.NewBookingService(store, nil))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/bookings", bookingBody(t, func(p map[string]any) {
				delete(p, missing)
			}))
			handler.CreateBooking(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, store.records, "rejected payloads must not be written")
		})
	}
}

func TestCreateBooking_MalformedJSONIs400(t *testing.T) {
	handler := api.NewBookingHandler(service.NewBookingService(&memoryBookingStore{}, nil))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", bytes.NewBufferString("{not json"))
	handler.CreateBooking(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
