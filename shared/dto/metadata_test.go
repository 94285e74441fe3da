package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"hotelier/shared/constant"
	"hotelier/shared/model"
	"hotelier/shared/timezone"
)

func TestMetadataFromModel(t *testing.T) {
	createdAt := time.Date(2026, 9, 10, 8, 30, 0, 0, time.UTC)
	modifiedAt := createdAt.Add(2 * time.Hour)

	metadata := Metadata{}.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "staff-1",
		ModifiedBy: "staff-2",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "staff-1", metadata.CreatedBy)
	assert.Equal(t, "staff-2", metadata.ModifiedBy)
}
