package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.co"))
	assert.True(t, ValidEmail("  a@b.co  "))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail(""))
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("9876543210"))
	assert.False(t, ValidPhone("12345"))
	assert.False(t, ValidPhone("98765432101"))

	// non-digits are stripped before the length check
	assert.True(t, ValidPhone("(987) 654-3210"))
	assert.Equal(t, "9876543210", NormalizePhone("(987) 654-3210"))
}

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("Abcde1!"))
	assert.False(t, ValidPassword("alllower1!"), "no uppercase")
	assert.False(t, ValidPassword("ALLUPPER1!"), "no lowercase")
	assert.False(t, ValidPassword("Abcdefg!"), "no digit")
	assert.False(t, ValidPassword("Abcdefg1"), "no special")
	assert.False(t, ValidPassword("Ab1!"), "too short")
}

func TestValidOTP(t *testing.T) {
	assert.True(t, ValidOTP("123456"))
	assert.False(t, ValidOTP("12345"))
	assert.False(t, ValidOTP("12345a"))
	assert.False(t, ValidOTP("1234567"))
}
