package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

func validRequest() CreateReservationRequest {
	return CreateReservationRequest{
		RoomID: "R101",
		Guest: GuestDraft{
			FirstName: "Amina",
			LastName:  "Yusuf",
		},
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
	}
}

func TestCreateReservationRequestToModel(t *testing.T) {
	t.Run("new bookings always start pending and confirmed", func(t *testing.T) {
		booking, err := validRequest().ToModel("G1")

		assert.NoError(t, err)
		assert.NotEmpty(t, booking.ID)
		assert.Equal(t, "G1", booking.GuestID)
		assert.Equal(t, constant.PaymentStatusPending, booking.PaymentStatus)
		assert.Equal(t, constant.BookingStatusConfirmed, booking.BookingStatus)
	})

	t.Run("stay dates are parsed in the application timezone", func(t *testing.T) {
		booking, err := validRequest().ToModel("G1")

		assert.NoError(t, err)

		expectedIn, _ := timezone.Parse(constant.DateFormatDate, "2026-09-10")
		expectedOut, _ := timezone.Parse(constant.DateFormatDate, "2026-09-12")

		assert.True(t, booking.InDate.Equal(expectedIn))
		assert.True(t, booking.OutDate.Equal(expectedOut))
		assert.Equal(t, expectedIn.Location(), booking.InDate.Location())
	})

	t.Run("rejects a check-out that is not after the check-in", func(t *testing.T) {
		request := validRequest()
		request.CheckOut = request.CheckIn

		_, err := request.ToModel("G1")

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		request := validRequest()
		request.CheckIn = "not-a-date"

		_, err := request.ToModel("G1")

		assert.Error(t, err)
		assert.True(t, failure.IsCode(err, http.StatusBadRequest))
	})
}
