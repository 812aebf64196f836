package pricing

import (
	"time"

	apperrors "parkhub/internal/errors"
)

// LateFeeRate is the late-arrival protection surcharge as a fraction of the
// base amount.
const LateFeeRate = 0.4

// MinLeadTime is the minimum gap between now and a requested arrival.
const MinLeadTime = 30 * time.Minute

// arrivalLayout matches the HTML datetime-local input the frontend submits.
const arrivalLayout = "2006-01-02T15:04"

// Quote is the price breakdown for a booking. TotalAmount is always exactly
// BaseAmount + LateFeeAmount; no rounding happens before display.
type Quote struct {
	BaseAmount    float64
	LateFeeAmount float64
	TotalAmount   float64
}

// Calculate prices a stay of durationHours at hourlyRate. Durations below one
// hour are billed as one hour.
func Calculate(hourlyRate float64, durationHours int, includeLateFee bool) Quote {
	if durationHours < 1 {
		durationHours = 1
	}
	base := hourlyRate * float64(durationHours)
	lateFee := 0.0
	if includeLateFee {
		lateFee = base * LateFeeRate
	}
	return Quote{
		BaseAmount:    base,
		LateFeeAmount: lateFee,
		TotalAmount:   base + lateFee,
	}
}

// Arrival validation failures, each with the user-facing message the client
// displays verbatim. A missing value is reported differently from one that is
// merely too soon.
var (
	ErrArrivalRequired  = apperrors.BadRequest("Select an arrival time.")
	ErrArrivalMalformed = apperrors.BadRequest("Arrival time is not a valid timestamp.")
	ErrArrivalTooSoon   = apperrors.BadRequest("Arrival must be at least 30 minutes from now.")
)

// ValidateArrival reports whether value names an arrival at least MinLeadTime
// after now. An arrival exactly MinLeadTime away is valid. The same rule runs
// at input time and again immediately before checkout submission, so stale UI
// state cannot slip through.
func ValidateArrival(value string, now time.Time) error {
	if value == "" {
		return ErrArrivalRequired
	}
	arrival, err := parseArrival(value, now.Location())
	if err != nil {
		return ErrArrivalMalformed
	}
	if arrival.Sub(now) < MinLeadTime {
		return ErrArrivalTooSoon
	}
	return nil
}

func parseArrival(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(arrivalLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
