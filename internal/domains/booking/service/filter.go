package service

import (
	"strings"

	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
)

// Filter returns the bookings whose id, guest full name, room id, voucher
// number or stay dates contain the term, compared case insensitively. An
// empty term keeps every booking. The input slice is not modified.
func Filter(bookings []model.BookingWithGuest, term string) []model.BookingWithGuest {
	if term == "" {
		return bookings
	}

	needle := strings.ToLower(term)

	matched := make([]model.BookingWithGuest, 0, len(bookings))

	for _, booking := range bookings {
		if matches(booking, needle) {
			matched = append(matched, booking)
		}
	}

	return matched
}

func matches(booking model.BookingWithGuest, needle string) bool {
	haystacks := []string{
		booking.ID,
		booking.GuestFullName(),
		booking.RoomID,
		booking.VoucherNumber,
		booking.InDate.Format(constant.DateFormatDate),
		booking.OutDate.Format(constant.DateFormatDate),
	}

	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}

	return false
}
