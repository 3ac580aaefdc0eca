package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"jane@x.com", "first.last@example.co.uk", "a+b@domain.io"}
	invalid := []string{"", "plainaddress", "no@tld", "spaces in@x.com", "@x.com", "jane@"}

	for _, v := range valid {
		result := validateValue(KindEmail, true, v)
		assert.True(t, result.Valid, v)
	}
	for _, v := range invalid {
		result := validateValue(KindEmail, true, v)
		assert.False(t, result.Valid, v)
		assert.Equal(t, msgInvalidEmail, result.Reason)
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"3055551234",
		"305-555-1234",
		"(305) 555-1234",
		"+1 305 555 1234",
	}
	invalid := []string{
		"",
		"555-1234",           // 7 digits
		"305-555-123",        // 9 digits
		"305.555.1234",       // dots are not allowed characters
		"call me",            // letters
		"305-555-1234 ext 9", // letters after a valid prefix
	}

	for _, v := range valid {
		result := validateValue(KindTel, true, v)
		assert.True(t, result.Valid, v)
	}
	for _, v := range invalid {
		result := validateValue(KindTel, true, v)
		assert.False(t, result.Valid, v)
		assert.Equal(t, msgInvalidPhone, result.Reason)
	}
}

func TestValidateRequiredText(t *testing.T) {
	assert.False(t, validateValue(KindText, true, "").Valid)
	assert.True(t, validateValue(KindText, true, "Jane").Valid)
	// Optional fields pass when empty.
	assert.True(t, validateValue(KindText, false, "").Valid)
}

func TestPhoneDigits(t *testing.T) {
	assert.Equal(t, 10, phoneDigits("(305) 555-1234"))
	assert.Equal(t, 11, phoneDigits("+1 305 555 1234"))
	assert.Equal(t, 0, phoneDigits("---"))
}
