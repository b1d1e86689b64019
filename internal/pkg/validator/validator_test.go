package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@thameemmobiles.in"))
	assert.True(t, IsValidEmail("a.b+c@example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("09:00"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.True(t, IsValidTimeOfDay("00:00"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:00"))
	assert.False(t, IsValidTimeOfDay("09:60"))
	assert.False(t, IsValidTimeOfDay("0900"))
}

func TestIsValidIMEI(t *testing.T) {
	assert.True(t, IsValidIMEI("490154203237518"))
	assert.False(t, IsValidIMEI("49015420323751"))   // 14 digits
	assert.False(t, IsValidIMEI("4901542032375189")) // 16 digits
	assert.False(t, IsValidIMEI("49015420323751x"))
}

func TestIsValidPhoneNumber(t *testing.T) {
	assert.True(t, IsValidPhoneNumber("9876543210"))
	assert.True(t, IsValidPhoneNumber("09876543210"))
	assert.True(t, IsValidPhoneNumber("919876543210"))
	assert.True(t, IsValidPhoneNumber("+919876543210"))
	assert.True(t, IsValidPhoneNumber("98765 43210"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("abcdefghij"))
	assert.False(t, IsValidPhoneNumber("98765432101234"))
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2025-09-15")
	assert.True(t, ok)
	assert.Equal(t, 2025, date.Year())

	_, ok = IsValidDate("15-09-2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2025-09-15T10:30:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-09-15T10:30:00+05:30")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2025-09-15 10:30:00")
	assert.False(t, ok)
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "phone", Message: "phone is invalid"},
	}

	assert.Equal(t, "name: name is required; phone: phone is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"phone": "phone is invalid",
	}, errs.ToMap())
}
