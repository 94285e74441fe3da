package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelier/shared/constant"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounds up", total: 21, limit: 10, expected: 3},
		{name: "empty set is one page", total: 0, limit: 10, expected: 1},
		{name: "zero limit is one page", total: 50, limit: 0, expected: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, CalculateTotalPage(test.total, test.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		RoomType  string   `db:"room_type"`
		RoomPrice *float64 `db:"room_price"`
		Ignored   string
	}

	price := 175.0
	fields := TransformFields(updateRequest{RoomType: "Deluxe", RoomPrice: &price, Ignored: "skip"}, "staff-1")

	assert.Equal(t, "Deluxe", fields["room_type"])
	assert.Equal(t, &price, fields["room_price"])
	assert.Equal(t, "staff-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
	assert.NotContains(t, fields, "Ignored")
}

func TestTransformFieldsSkipsZeroValues(t *testing.T) {
	type updateRequest struct {
		RoomType string `db:"room_type"`
	}

	fields := TransformFields(updateRequest{}, "staff-1")

	assert.NotContains(t, fields, "room_type")
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:B1", BuildCacheKey("booking", "B1"))
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, ConvertStringToBool(""))
	assert.Nil(t, ConvertStringToBool("not-a-bool"))

	value := ConvertStringToBool("true")
	if assert.NotNil(t, value) {
		assert.True(t, *value)
	}
}
