package model

import (
	"strings"
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                = "id"
	FieldGuestID           = "guest_id"
	FieldRoomID            = "room_id"
	FieldVoucherNumber     = "voucher_number"
	FieldInDate            = "in_date"
	FieldOutDate           = "out_date"
	FieldSpecialPreference = "special_preference"
	FieldPaymentStatus     = "payment_status"
	FieldBookingStatus     = "booking_status"
)

type Booking struct {
	ID                string    `db:"id"`
	GuestID           string    `db:"guest_id"`
	RoomID            string    `db:"room_id"`
	VoucherNumber     string    `db:"voucher_number"`
	InDate            time.Time `db:"in_date"`
	OutDate           time.Time `db:"out_date"`
	SpecialPreference string    `db:"special_preference"`
	PaymentStatus     string    `db:"payment_status"`
	BookingStatus     string    `db:"booking_status"`
	model.Metadata
}

// Overlaps reports whether the stay intersects the half open interval
// [checkIn, checkOut). A booking that checks out on checkIn does not overlap.
func (b Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.InDate.Before(checkOut) && b.OutDate.After(checkIn)
}

// BookingWithGuest is the booking row joined with the owning guest's public
// columns. The guest's password is deliberately not part of the projection.
type BookingWithGuest struct {
	Booking
	GuestFirstName     string `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestMiddleName    string `db:"guest_middle_name" table:"guests" column:"middle_name"`
	GuestLastName      string `db:"guest_last_name" table:"guests" column:"last_name"`
	GuestContactNumber string `db:"guest_contact_number" table:"guests" column:"contact_number"`
}

func (BookingWithGuest) GetJoinQuery() string {
	return "JOIN guests ON bookings.guest_id = guests.id"
}

func (b BookingWithGuest) GuestFullName() string {
	parts := []string{b.GuestFirstName}

	if b.GuestMiddleName != "" {
		parts = append(parts, b.GuestMiddleName)
	}

	parts = append(parts, b.GuestLastName)

	return strings.Join(parts, " ")
}
