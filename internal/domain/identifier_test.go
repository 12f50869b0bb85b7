package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("u1"))
	assert.True(t, ValidID("a.b-c_d9"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("has space"))
	assert.False(t, ValidID("slash/id"))

	long := make([]byte, 129)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidID(string(long)))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("id", "u1"))

	err := ValidateID("id", "")
	assert.Error(t, err)
}
