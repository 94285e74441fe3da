package dto

import (
	"github.com/google/uuid"

	"hotelier/internal/domains/booking/model"
	guestModel "hotelier/internal/domains/guest/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

// GuestDraft carries the guest identity attached to a reservation. When
// GuestID matches an existing guest the stored record wins and the rest of
// the draft is ignored.
type GuestDraft struct {
	GuestID       string `json:"guest_id" validate:"omitempty,max=36"`
	FirstName     string `json:"first_name" validate:"required,max=100"`
	LastName      string `json:"last_name" validate:"required,max=100"`
	MiddleName    string `json:"middle_name" validate:"omitempty,max=100"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=30"`
	Password      string `json:"password" validate:"omitempty,min=8,max=72"`
}

func (d GuestDraft) ToModel() guestModel.Guest {
	id := d.GuestID
	if id == "" {
		id = uuid.NewString()
	}

	return guestModel.Guest{
		ID:            id,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		MiddleName:    d.MiddleName,
		ContactNumber: d.ContactNumber,
		Password:      d.Password,
	}
}

type CreateReservationRequest struct {
	RoomID            string     `json:"room_id" validate:"required,max=36"`
	Guest             GuestDraft `json:"guest" validate:"required"`
	CheckIn           string     `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut          string     `json:"check_out" validate:"required,datetime=2006-01-02"`
	VoucherNumber     string     `json:"voucher_number" validate:"omitempty,max=50"`
	SpecialPreference string     `json:"special_preference" validate:"omitempty,max=255"`
}

// ToModel builds the booking to persist. The booking id is always generated
// server side, the stay must be a valid half open interval and every new
// booking starts as Pending/Confirmed. Payment is settled through an update.
func (d CreateReservationRequest) ToModel(guestID string) (model.Booking, error) {
	inDate, err := timezone.Parse(constant.DateFormatDate, d.CheckIn)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_in must be a valid date")
	}

	outDate, err := timezone.Parse(constant.DateFormatDate, d.CheckOut)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("check_out must be a valid date")
	}

	if !outDate.After(inDate) {
		return model.Booking{}, failure.BadRequestFromString("check_out must be after check_in")
	}

	return model.Booking{
		ID:                uuid.NewString(),
		GuestID:           guestID,
		RoomID:            d.RoomID,
		VoucherNumber:     d.VoucherNumber,
		InDate:            inDate,
		OutDate:           outDate,
		SpecialPreference: d.SpecialPreference,
		PaymentStatus:     constant.PaymentStatusPending,
		BookingStatus:     constant.BookingStatusConfirmed,
	}, nil
}

type UpdateBookingRequest struct {
	RoomID            string `json:"room_id" validate:"omitempty,max=36" db:"room_id"`
	VoucherNumber     string `json:"voucher_number" validate:"omitempty,max=50" db:"voucher_number"`
	CheckIn           string `json:"check_in" validate:"omitempty,datetime=2006-01-02"`
	CheckOut          string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	SpecialPreference string `json:"special_preference" validate:"omitempty,max=255" db:"special_preference"`
	PaymentStatus     string `json:"payment_status" validate:"omitempty,max=50" db:"payment_status"`
	BookingStatus     string `json:"booking_status" validate:"omitempty,max=50" db:"booking_status"`
}

type GuestSummary struct {
	GuestID       string `json:"guest_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	MiddleName    string `json:"middle_name,omitempty"`
	FullName      string `json:"full_name"`
	ContactNumber string `json:"contact_number,omitempty"`
}

type BookingResponse struct {
	ID                string        `json:"id"`
	GuestID           string        `json:"guest_id"`
	RoomID            string        `json:"room_id"`
	VoucherNumber     string        `json:"voucher_number,omitempty"`
	CheckIn           string        `json:"check_in"`
	CheckOut          string        `json:"check_out"`
	SpecialPreference string        `json:"special_preference,omitempty"`
	PaymentStatus     string        `json:"payment_status"`
	BookingStatus     string        `json:"booking_status"`
	Guest             *GuestSummary `json:"guest,omitempty"`
	Metadata          gDto.Metadata `json:"metadata"`
}

func (d BookingResponse) FromModel(m model.Booking) BookingResponse {
	return BookingResponse{
		ID:                m.ID,
		GuestID:           m.GuestID,
		RoomID:            m.RoomID,
		VoucherNumber:     m.VoucherNumber,
		CheckIn:           m.InDate.Format(constant.DateFormatDate),
		CheckOut:          m.OutDate.Format(constant.DateFormatDate),
		SpecialPreference: m.SpecialPreference,
		PaymentStatus:     m.PaymentStatus,
		BookingStatus:     m.BookingStatus,
		Metadata:          gDto.Metadata{}.FromModel(m.Metadata),
	}
}

func (d BookingResponse) FromJoinedModel(m model.BookingWithGuest) BookingResponse {
	response := d.FromModel(m.Booking)
	response.Guest = &GuestSummary{
		GuestID:       m.GuestID,
		FirstName:     m.GuestFirstName,
		LastName:      m.GuestLastName,
		MiddleName:    m.GuestMiddleName,
		FullName:      m.GuestFullName(),
		ContactNumber: m.GuestContactNumber,
	}

	return response
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (d GetBookingsResponse) FromJoinedModels(models []model.BookingWithGuest, totalPage, totalData int) GetBookingsResponse {
	bookings := make([]BookingResponse, 0, len(models))
	for _, m := range models {
		bookings = append(bookings, BookingResponse{}.FromJoinedModel(m))
	}

	return GetBookingsResponse{
		Bookings:  bookings,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
