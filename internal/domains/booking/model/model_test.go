package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestBookingOverlaps(t *testing.T) {
	booking := Booking{InDate: day(10), OutDate: day(12)}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		overlaps bool
	}{
		{name: "identical stay", checkIn: day(10), checkOut: day(12), overlaps: true},
		{name: "contained stay", checkIn: day(10), checkOut: day(11), overlaps: true},
		{name: "straddles check-in", checkIn: day(9), checkOut: day(11), overlaps: true},
		{name: "straddles check-out", checkIn: day(11), checkOut: day(13), overlaps: true},
		{name: "surrounds stay", checkIn: day(9), checkOut: day(13), overlaps: true},
		{name: "same-day turnover after checkout", checkIn: day(12), checkOut: day(14), overlaps: false},
		{name: "ends on existing check-in", checkIn: day(8), checkOut: day(10), overlaps: false},
		{name: "entirely before", checkIn: day(1), checkOut: day(5), overlaps: false},
		{name: "entirely after", checkIn: day(20), checkOut: day(25), overlaps: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.overlaps, booking.Overlaps(test.checkIn, test.checkOut))
		})
	}
}

func TestGuestFullName(t *testing.T) {
	tests := []struct {
		name     string
		booking  BookingWithGuest
		expected string
	}{
		{
			name: "with middle name",
			booking: BookingWithGuest{
				GuestFirstName:  "Amina",
				GuestMiddleName: "K",
				GuestLastName:   "Yusuf",
			},
			expected: "Amina K Yusuf",
		},
		{
			name: "without middle name",
			booking: BookingWithGuest{
				GuestFirstName: "Budi",
				GuestLastName:  "Santoso",
			},
			expected: "Budi Santoso",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.booking.GuestFullName())
		})
	}
}
