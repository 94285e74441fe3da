package model

import (
	"strings"

	"hotelier/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID            = "id"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldMiddleName    = "middle_name"
	FieldContactNumber = "contact_number"
	FieldPassword      = "password"
)

type Guest struct {
	ID            string `db:"id"`
	FirstName     string `db:"first_name"`
	LastName      string `db:"last_name"`
	MiddleName    string `db:"middle_name"`
	ContactNumber string `db:"contact_number"`
	Password      string `db:"password"`
	model.Metadata
}

// FullName joins the guest's name parts, skipping an empty middle name.
func (g Guest) FullName() string {
	parts := []string{g.FirstName}

	if g.MiddleName != "" {
		parts = append(parts, g.MiddleName)
	}

	parts = append(parts, g.LastName)

	return strings.Join(parts, " ")
}
