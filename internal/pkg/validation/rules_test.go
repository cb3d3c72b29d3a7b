package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{"student@example.com", "a.b+c@sub.domain.in"}
	invalid := []string{"", "plain", "missing@tld", "@example.com", "user@.com"}

	for _, v := range valid {
		assert.True(t, IsValidEmail(v), v)
	}
	for _, v := range invalid {
		assert.False(t, IsValidEmail(v), v)
	}
}

func TestIsValidPhone(t *testing.T) {
	valid := []string{"+91-9876543210", "9876543210", "+1 555 012 3456"}
	invalid := []string{"", "abc", "123", "+91_9876543210"}

	for _, v := range valid {
		assert.True(t, IsValidPhone(v), v)
	}
	for _, v := range invalid {
		assert.False(t, IsValidPhone(v), v)
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-12-31"))
	assert.False(t, IsValidDate("31-12-2024"))
	assert.False(t, IsValidDate("2024/12/31"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidURL(t *testing.T) {
	valid := []string{"https://example.com/file.pdf", "http://localhost:8080/uploads/cv.pdf", "/uploads/resumes/cv.pdf"}
	invalid := []string{"", "ftp://example.com/file"}

	for _, v := range valid {
		assert.True(t, IsValidURL(v), v)
	}
	for _, v := range invalid {
		assert.False(t, IsValidURL(v), v)
	}
}

func TestIsValidGPA(t *testing.T) {
	assert.True(t, IsValidGPA(0))
	assert.True(t, IsValidGPA(88.5))
	assert.True(t, IsValidGPA(100))
	assert.False(t, IsValidGPA(-1))
	assert.False(t, IsValidGPA(100.5))
}

func TestStringValidation(t *testing.T) {
	assert.True(t, NewStringValidation("Rahul").WithMinLength(2).WithMaxLength(100).Validate())
	assert.False(t, NewStringValidation("R").WithMinLength(2).Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("").WithRequired(false).Validate())
	assert.True(t, NewStringValidation("student@example.com").WithPattern(CompiledPatterns.Email).Validate())
	assert.False(t, NewStringValidation("nope").WithPattern(CompiledPatterns.Email).Validate())
}
