package model

import (
	"fmt"
	"strings"
)

// BookingConfirmation is published once a booking is confirmed.
type BookingConfirmation struct {
	BookingID  int64   `json:"booking_id"`
	GuestName  string  `json:"guest_name"`
	GuestEmail string  `json:"guest_email"`
	RoomName   string  `json:"room_name"`
	CheckIn    string  `json:"check_in"`
	CheckOut   string  `json:"check_out"`
	Guests     int     `json:"guests"`
	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"total_price"`
}

func (b BookingConfirmation) Subject() string {
	return fmt.Sprintf("Booking confirmation #%d", b.BookingID)
}

func (b BookingConfirmation) Body(hotelName string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Dear %s,\n\n", b.GuestName)
	sb.WriteString("Your booking has been confirmed. Here are the details:\n\n")
	fmt.Fprintf(&sb, "Booking: #%d\n", b.BookingID)
	fmt.Fprintf(&sb, "Room: %s\n", b.RoomName)
	fmt.Fprintf(&sb, "Check-in: %s\n", b.CheckIn)
	fmt.Fprintf(&sb, "Check-out: %s\n", b.CheckOut)
	fmt.Fprintf(&sb, "Guests: %d\n", b.Guests)
	fmt.Fprintf(&sb, "Nights: %d\n", b.Nights)
	fmt.Fprintf(&sb, "Total: %.2f\n\n", b.TotalPrice)
	fmt.Fprintf(&sb, "We look forward to welcoming you.\n%s\n", hotelName)

	return sb.String()
}
