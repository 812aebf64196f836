package service

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v82"

	"parkhub/internal/entities"
	apperrors "parkhub/internal/errors"
	"parkhub/internal/pricing"
)

// sessionCreator lets tests stand in for the Stripe-backed service.
type sessionCreator interface {
	CreateCheckoutSession(req CheckoutSessionRequest) (string, error)
}

// CheckoutResult carries the redirect URL and whether it is the mock
// no-charge confirmation used when no provider credential is configured.
type CheckoutResult struct {
	URL  string
	Mock bool
}

// CheckoutService turns a booking payload into a hosted payment session. It
// never persists anything: record-keeping and payment are independent,
// unordered operations with no rollback coupling.
type CheckoutService struct {
	stripeKey string
	appURL    string
	sessions  sessionCreator
	now       func() time.Time
}

func NewCheckoutService(stripeKey, appURL string, sessions sessionCreator) *CheckoutService {
	return &CheckoutService{
		stripeKey: stripeKey,
		appURL:    appURL,
		sessions:  sessions,
		now:       time.Now,
	}
}

// CreateSession validates the payload and creates a checkout session for it.
// origin is the caller's public URL for the post-payment return pages; when
// empty the configured application URL is used instead.
//
// Without a Stripe key it short-circuits to a mock confirmation URL whose
// mock=1 marker signals that no charge occurred, so the rest of the system
// can be demoed without live credentials.
func (s *CheckoutService) CreateSession(payload entities.BookingPayload, origin string) (*CheckoutResult, error) {
	if payload.TotalAmount == 0 || payload.Currency == "" {
		return nil, apperrors.BadRequest("Invalid booking payload.")
	}
	if err := pricing.ValidateArrival(payload.ArrivalTime, s.now()); err != nil {
		return nil, err
	}
	if err := verifyQuote(payload); err != nil {
		return nil, err
	}

	if origin == "" {
		origin = s.appURL
	}
	if origin == "" {
		return nil, apperrors.ServerError("Unable to determine application URL.")
	}

	if s.stripeKey == "" {
		return &CheckoutResult{URL: origin + "/success?mock=1", Mock: true}, nil
	}

	url, err := s.sessions.CreateCheckoutSession(CheckoutSessionRequest{
		Amount:      int64(math.Round(payload.TotalAmount * 100)),
		Currency:    payload.Currency,
		Name:        "Parking at " + payload.ParkingName,
		Description: fmt.Sprintf("%s, %s · Arrival %s", payload.City, payload.Country, payload.ArrivalTime),
		Metadata: map[string]string{
			"parkingId":     payload.ParkingID,
			"arrivalTime":   payload.ArrivalTime,
			"durationHours": strconv.Itoa(payload.DurationHours),
			"baseAmount":    strconv.FormatFloat(payload.BaseAmount, 'f', -1, 64),
			"lateFeeAmount": strconv.FormatFloat(payload.LateFeeAmount, 'f', -1, 64),
		},
		SuccessURL:    origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     origin + "/cancel",
		CustomerEmail: payload.Email,
	})
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok {
			return nil, apperrors.BadRequest(stripeErr.Msg)
		}
		log.Printf("Unexpected error creating checkout session: %v", err)
		return nil, apperrors.ServerError("Unable to create checkout session.")
	}

	return &CheckoutResult{URL: url}, nil
}

// quoteTolerance is the widest acceptable gap between submitted amounts and
// the recomputed quote. Charges happen in minor currency units, so one cent
// absorbs float noise without accepting a tampered price.
const quoteTolerance = 0.01

// verifyQuote recomputes the price breakdown from the submitted base amount
// and rejects payloads whose late fee or total does not add up. Clients price
// locally for display, so the numbers are re-derived here before any money
// moves.
func verifyQuote(p entities.BookingPayload) error {
	hours := p.DurationHours
	if hours < 1 {
		hours = 1
	}
	quote := pricing.Calculate(p.BaseAmount/float64(hours), p.DurationHours, p.LateFeeAmount > 0)
	if math.Abs(quote.LateFeeAmount-p.LateFeeAmount) > quoteTolerance ||
		math.Abs(quote.TotalAmount-p.TotalAmount) > quoteTolerance {
		return apperrors.BadRequest("Booking amounts do not add up.")
	}
	return nil
}
