package dto

import (
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
)

const (
	EventTypeReservationCreated = "reservation.created"
	EventTypeBookingUpdated     = "booking.updated"
)

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Type          string `json:"type"`
	BookingID     string `json:"booking_id"`
	GuestID       string `json:"guest_id,omitempty"`
	RoomID        string `json:"room_id,omitempty"`
	CheckIn       string `json:"check_in,omitempty"`
	CheckOut      string `json:"check_out,omitempty"`
	PaymentStatus string `json:"payment_status,omitempty"`
	BookingStatus string `json:"booking_status,omitempty"`
}

func (d BookingEvent) FromModel(eventType string, m model.Booking) BookingEvent {
	return BookingEvent{
		Type:          eventType,
		BookingID:     m.ID,
		GuestID:       m.GuestID,
		RoomID:        m.RoomID,
		CheckIn:       m.InDate.Format(constant.DateFormatDate),
		CheckOut:      m.OutDate.Format(constant.DateFormatDate),
		PaymentStatus: m.PaymentStatus,
		BookingStatus: m.BookingStatus,
	}
}
