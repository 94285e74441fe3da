package failure

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "bad request", err: BadRequestFromString("nope"), expected: http.StatusBadRequest},
		{name: "not found", err: NotFound("booking"), expected: http.StatusNotFound},
		{name: "conflict", err: Conflict("taken"), expected: http.StatusConflict},
		{name: "unauthorized", err: Unauthorized("who"), expected: http.StatusUnauthorized},
		{name: "forbidden", err: Forbidden("no"), expected: http.StatusForbidden},
		{name: "plain error defaults to 500", err: errors.New("boom"), expected: http.StatusInternalServerError},
		{name: "wrapped failure keeps its code", err: fmt.Errorf("outer: %w", NotFound("room")), expected: http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, GetCode(test.err))
		})
	}
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(Conflict("taken"), http.StatusConflict))
	assert.False(t, IsCode(Conflict("taken"), http.StatusNotFound))
}
