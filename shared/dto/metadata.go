package dto

import (
	"hotelier/shared/constant"
	"hotelier/shared/model"
	"hotelier/shared/timezone"
)

type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by"`
}

func (m Metadata) FromModel(model model.Metadata) Metadata {
	return Metadata{
		CreatedAt:  timezone.Format(model.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(model.ModifiedAt, constant.DateFormat),
		CreatedBy:  model.CreatedBy,
		ModifiedBy: model.ModifiedBy,
	}
}
