package dto

import (
	"time"

	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	ID           string  `json:"id" validate:"required,max=36"`
	RoomType     string  `json:"room_type" validate:"required,max=100"`
	RoomPrice    float64 `json:"room_price" validate:"gte=0"`
	Availability *bool   `json:"availability"`
}

func (d CreateRoomRequest) ToModel() model.Room {
	availability := true
	if d.Availability != nil {
		availability = *d.Availability
	}

	return model.Room{
		ID:           d.ID,
		RoomType:     d.RoomType,
		RoomPrice:    d.RoomPrice,
		Availability: availability,
	}
}

type UpdateRoomRequest struct {
	RoomType     string   `json:"room_type" validate:"omitempty,max=100" db:"room_type"`
	RoomPrice    *float64 `json:"room_price" validate:"omitempty,gte=0" db:"room_price"`
	Availability *bool    `json:"availability" db:"availability"`
}

type AvailabilityRequest struct {
	RoomType string `json:"room_type" validate:"required,max=100"`
	CheckIn  string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" validate:"required,datetime=2006-01-02"`
}

// Window parses the requested stay and rejects a check-out that is not
// strictly after the check-in.
func (d AvailabilityRequest) Window() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateFormatDate, d.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_in must be a valid date")
	}

	checkOut, err = timezone.Parse(constant.DateFormatDate, d.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out must be a valid date")
	}

	if !checkOut.After(checkIn) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("check_out must be after check_in")
	}

	return checkIn, checkOut, nil
}

type RoomResponse struct {
	ID           string        `json:"id"`
	RoomType     string        `json:"room_type"`
	RoomPrice    float64       `json:"room_price"`
	Availability bool          `json:"availability"`
	Metadata     gDto.Metadata `json:"metadata"`
}

func (d RoomResponse) FromModel(m model.Room) RoomResponse {
	return RoomResponse{
		ID:           m.ID,
		RoomType:     m.RoomType,
		RoomPrice:    m.RoomPrice,
		Availability: m.Availability,
		Metadata:     gDto.Metadata{}.FromModel(m.Metadata),
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (d GetRoomsResponse) FromModels(models []model.Room, totalPage, totalData int) GetRoomsResponse {
	rooms := make([]RoomResponse, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, RoomResponse{}.FromModel(m))
	}

	return GetRoomsResponse{
		Rooms:     rooms,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}

type GetAvailableRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (d GetAvailableRoomsResponse) FromModels(models []model.Room) GetAvailableRoomsResponse {
	rooms := make([]RoomResponse, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, RoomResponse{}.FromModel(m))
	}

	return GetAvailableRoomsResponse{Rooms: rooms}
}

type GetRoomTypesResponse struct {
	RoomTypes []string `json:"room_types"`
}
