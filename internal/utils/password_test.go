package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("admin123", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, VerifyPassword(hash, "admin123"))
	assert.False(t, VerifyPassword(hash, "admin124"))
	assert.False(t, VerifyPassword("not-a-hash", "admin123"))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same", 4)
	assert.NoError(t, err)
	b, err := HashPassword("same", 4)
	assert.NoError(t, err)
	assert.NotEqual(t, a, b)
}
