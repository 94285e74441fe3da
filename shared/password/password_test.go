package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hashed, err := Hash("a-strong-password")

	assert.NoError(t, err)
	assert.NotEqual(t, "a-strong-password", hashed)
	assert.NoError(t, Verify("a-strong-password", hashed))
	assert.ErrorIs(t, Verify("wrong-password", hashed), ErrInvalidPassword)
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	_, err := Hash("")

	assert.Error(t, err)
}

func TestVerifyRejectsEmptyInput(t *testing.T) {
	assert.ErrorIs(t, Verify("", "hash"), ErrInvalidPassword)
	assert.ErrorIs(t, Verify("password", ""), ErrInvalidPassword)
}
