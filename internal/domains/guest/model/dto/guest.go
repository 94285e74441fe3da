package dto

import (
	"hotelier/internal/domains/guest/model"
	gDto "hotelier/shared/dto"
)

type UpdateGuestRequest struct {
	FirstName     string `json:"first_name" validate:"omitempty,max=100" db:"first_name"`
	LastName      string `json:"last_name" validate:"omitempty,max=100" db:"last_name"`
	MiddleName    string `json:"middle_name" validate:"omitempty,max=100" db:"middle_name"`
	ContactNumber string `json:"contact_number" validate:"omitempty,max=30" db:"contact_number"`
	Password      string `json:"password" validate:"omitempty,min=8,max=72"`
}

type GuestResponse struct {
	ID            string        `json:"id"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	MiddleName    string        `json:"middle_name,omitempty"`
	FullName      string        `json:"full_name"`
	ContactNumber string        `json:"contact_number,omitempty"`
	Metadata      gDto.Metadata `json:"metadata"`
}

func (d GuestResponse) FromModel(m model.Guest) GuestResponse {
	return GuestResponse{
		ID:            m.ID,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		MiddleName:    m.MiddleName,
		FullName:      m.FullName(),
		ContactNumber: m.ContactNumber,
		Metadata:      gDto.Metadata{}.FromModel(m.Metadata),
	}
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (d GetGuestsResponse) FromModels(models []model.Guest, totalPage, totalData int) GetGuestsResponse {
	guests := make([]GuestResponse, 0, len(models))
	for _, m := range models {
		guests = append(guests, GuestResponse{}.FromModel(m))
	}

	return GetGuestsResponse{
		Guests:    guests,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
