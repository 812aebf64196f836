package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingPayload is the snapshot a client submits at checkout time. Facility
// fields are copied from the selected ParkingFacility at submission and are
// not re-validated against live inventory.
type BookingPayload struct {
	ParkingID     string  `json:"parkingId" bson:"parkingId"`
	ParkingName   string  `json:"parkingName" bson:"parkingName"`
	City          string  `json:"city" bson:"city"`
	Country       string  `json:"country" bson:"country"`
	Address       string  `json:"address" bson:"address"`
	ArrivalTime   string  `json:"arrivalTime" bson:"arrivalTime"`
	DurationHours int     `json:"durationHours" bson:"durationHours"`
	BaseAmount    float64 `json:"baseAmount" bson:"baseAmount"`
	LateFeeAmount float64 `json:"lateFeeAmount" bson:"lateFeeAmount"`
	TotalAmount   float64 `json:"totalAmount" bson:"totalAmount"`
	Currency      string  `json:"currency" bson:"currency"`

	// Optional contact details for the confirmation email/SMS.
	Email string `json:"email,omitempty" bson:"email,omitempty"`
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`
}

// BookingRecord is a stored booking: the submitted payload plus the
// server-assigned identifier and creation timestamp. Records are append-only
// and immutable; there is no update or delete path.
type BookingRecord struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookingPayload `bson:",inline"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}
