package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"parkhub/internal/pricing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		rate           float64
		duration       int
		includeLateFee bool
		wantBase       float64
		wantLateFee    float64
	}{
		{"simple", 8.5, 2, false, 17, 0},
		{"with late fee", 10, 3, true, 30, 12},
		{"single hour", 18, 1, false, 18, 0},
		{"zero duration billed as one hour", 18, 0, true, 18, 7.2},
		{"negative duration billed as one hour", 5, -3, false, 5, 0},
		{"zero rate", 0, 4, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := pricing.Calculate(tt.rate, tt.duration, tt.includeLateFee)
			assert.Equal(t, tt.wantBase, q.BaseAmount)
			assert.Equal(t, tt.wantLateFee, q.LateFeeAmount)
			assert.Equal(t, tt.wantBase+tt.wantLateFee, q.TotalAmount)
		})
	}
}

func TestValidateArrival(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	layout := "2006-01-02T15:04"

	t.Run("exactly 30 minutes out is valid", func(t *testing.T) {
		assert.NoError(t, pricing.ValidateArrival(now.Add(30*time.Minute).Format(layout), now))
	})

	t.Run("29 minutes out is too soon", func(t *testing.T) {
		err := pricing.ValidateArrival(now.Add(29*time.Minute).Format(layout), now)
		assert.ErrorIs(t, err, pricing.ErrArrivalTooSoon)
	})

	t.Run("past arrival is too soon", func(t *testing.T) {
		err := pricing.ValidateArrival(now.Add(-2*time.Hour).Format(layout), now)
		assert.ErrorIs(t, err, pricing.ErrArrivalTooSoon)
	})

	t.Run("empty value has its own message", func(t *testing.T) {
		err := pricing.ValidateArrival("", now)
		assert.ErrorIs(t, err, pricing.ErrArrivalRequired)
		assert.EqualError(t, err, "Select an arrival time.")
	})

	t.Run("garbage is malformed, not too soon", func(t *testing.T) {
		err := pricing.ValidateArrival("tomorrow-ish", now)
		assert.ErrorIs(t, err, pricing.ErrArrivalMalformed)
	})

	t.Run("rfc3339 is accepted", func(t *testing.T) {
		assert.NoError(t, pricing.ValidateArrival(now.Add(time.Hour).Format(time.RFC3339), now))
	})
}
