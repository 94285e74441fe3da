package model

import "hotelier/shared/model"

const (
	TableName  = "staffs"
	EntityName = "staff"

	FieldID         = "id"
	FieldFirstName  = "first_name"
	FieldLastName   = "last_name"
	FieldMiddleName = "middle_name"
	FieldPassword   = "password"
	FieldPosition   = "position"
)

type Staff struct {
	ID         string `db:"id"`
	FirstName  string `db:"first_name"`
	LastName   string `db:"last_name"`
	MiddleName string `db:"middle_name"`
	Password   string `db:"password"`
	Position   string `db:"position"`
	model.Metadata
}
