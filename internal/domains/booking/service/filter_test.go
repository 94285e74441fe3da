package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/internal/domains/booking/model"
)

func sampleBookings() []model.BookingWithGuest {
	return []model.BookingWithGuest{
		{
			Booking: model.Booking{
				ID:            "BK-001",
				RoomID:        "R101",
				VoucherNumber: "VCH-77",
				InDate:        time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
				OutDate:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			},
			GuestFirstName:  "Amina",
			GuestMiddleName: "K",
			GuestLastName:   "Yusuf",
		},
		{
			Booking: model.Booking{
				ID:      "BK-002",
				RoomID:  "R205",
				InDate:  time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
				OutDate: time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC),
			},
			GuestFirstName: "Budi",
			GuestLastName:  "Santoso",
		},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{name: "empty term keeps everything", term: "", expected: []string{"BK-001", "BK-002"}},
		{name: "matches booking id", term: "bk-001", expected: []string{"BK-001"}},
		{name: "matches full name ignoring case", term: "amina k yusuf", expected: []string{"BK-001"}},
		{name: "matches partial guest name", term: "santo", expected: []string{"BK-002"}},
		{name: "matches room id", term: "r205", expected: []string{"BK-002"}},
		{name: "matches voucher number", term: "vch-77", expected: []string{"BK-001"}},
		{name: "matches check-in date", term: "2026-09-10", expected: []string{"BK-001"}},
		{name: "matches check-out date", term: "2026-10-03", expected: []string{"BK-002"}},
		{name: "no match yields empty set", term: "nothing-here", expected: []string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			matched := Filter(sampleBookings(), test.term)

			ids := make([]string, 0, len(matched))
			for _, booking := range matched {
				ids = append(ids, booking.ID)
			}

			assert.Equal(t, test.expected, ids)
		})
	}
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	bookings := sampleBookings()

	Filter(bookings, "amina")

	assert.Len(t, bookings, 2)
}
