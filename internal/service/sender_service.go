package service

import (
	"fmt"
	"log"
	"strings"

	"parkhub/internal/entities"
)

// SenderService sends booking confirmations. Everything here is best-effort:
// a failed notification is logged and never fails the booking that triggered
// it.
type SenderService struct{}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// SendBookingConfirmation emails and texts the booker, when the payload
// carries the respective contact detail. Both sends run asynchronously.
func (s *SenderService) SendBookingConfirmation(record *entities.BookingRecord) {
	if record.Email != "" {
		subject := fmt.Sprintf("Your ParkHub booking at %s is confirmed", record.ParkingName)
		plainBody := fmt.Sprintf(
			"Hello,\n\nYour parking booking is confirmed.\n\n"+
				"Booking Details:\n"+
				"Facility: %s\n"+
				"Location: %s, %s\n"+
				"Address: %s\n"+
				"Arrival: %s\n"+
				"Duration: %d hour(s)\n"+
				"Total: %.2f %s\n\n"+
				"Thank you for choosing ParkHub.",
			record.ParkingName, record.City, record.Country, record.Address,
			record.ArrivalTime, record.DurationHours,
			record.TotalAmount, strings.ToUpper(record.Currency),
		)

		go func(toEmail, subject, body string) {
			if err := SendEmailWithSendGrid(toEmail, "", subject, body, ""); err != nil {
				log.Printf("Booking %s stored, but confirmation email to %s failed: %v", record.ID.Hex(), toEmail, err)
			}
		}(record.Email, subject, plainBody)
	}

	if record.Phone != "" {
		message := fmt.Sprintf("ParkHub: your booking at %s is confirmed!\nArrival: %s.\nMore details in your email.",
			record.ParkingName, record.ArrivalTime)

		go func(toPhone, body string) {
			if err := SendSMS(toPhone, body); err != nil {
				log.Printf("Booking %s stored, but confirmation SMS to %s failed: %v", record.ID.Hex(), toPhone, err)
			}
		}(record.Phone, message)
	}
}
