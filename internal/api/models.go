package api

import "parkhub/internal/entities"

// Search
type SearchResponse struct {
	Locations []entities.ParkingFacility `json:"locations"`
	Source    string                     `json:"source"`
}

// Checkout
type CheckoutResponse struct {
	URL string `json:"url"`
}

// Bookings
type BookingsResponse struct {
	Bookings []entities.BookingRecord `json:"bookings"`
}
type CreateBookingResponse struct {
	ID string `json:"id"`
}

// Errors
type ErrorResponse struct {
	Error string `json:"error"`
}
