package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID           = "id"
	FieldRoomType     = "room_type"
	FieldRoomPrice    = "room_price"
	FieldAvailability = "availability"
)

type Room struct {
	ID           string  `db:"id"`
	RoomType     string  `db:"room_type"`
	RoomPrice    float64 `db:"room_price"`
	Availability bool    `db:"availability"`
	model.Metadata
}
