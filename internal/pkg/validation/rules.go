package validation

import (
	"net/url"
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Phone validation pattern - optional country code plus digits/separators
	PhonePattern = `^\+?[0-9][0-9\-\s]{6,16}$`

	// Calendar date pattern (YYYY-MM-DD)
	DatePattern = `^\d{4}-\d{2}-\d{2}$`

	// Password min length, matching the portal's profile rules
	PasswordMinLength = 6

	// Name min/max length
	NameMinLength = 2
	NameMaxLength = 100

	// GPA is a percentage
	GPAMin = 0.0
	GPAMax = 100.0
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
	Phone *regexp.Regexp
	Date  *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
	Phone: regexp.MustCompile(PhonePattern),
	Date:  regexp.MustCompile(DatePattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidPhone reports whether the value looks like a phone number.
func IsValidPhone(value string) bool {
	return CompiledPatterns.Phone.MatchString(value)
}

// IsValidDate reports whether the value is a YYYY-MM-DD date string.
func IsValidDate(value string) bool {
	return CompiledPatterns.Date.MatchString(value)
}

// IsValidPassword reports whether the password meets the minimum length.
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}

// IsValidURL reports whether the value parses as an absolute http(s) URL
// or a relative upload path.
func IsValidURL(value string) bool {
	if value == "" {
		return false
	}
	u, err := url.Parse(value)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		// Relative paths (local upload references) are accepted
		return u.Path != ""
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidGPA reports whether the value is a percentage within range.
func IsValidGPA(value float64) bool {
	return value >= GPAMin && value <= GPAMax
}

// StringValidation validates a string value against composable rules
type StringValidation struct {
	Value    string
	MinLen   int
	MaxLen   int
	Required bool
	Pattern  *regexp.Regexp
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// WithMinLength sets minimum length
func (v *StringValidation) WithMinLength(min int) *StringValidation {
	v.MinLen = min
	return v
}

// WithMaxLength sets maximum length
func (v *StringValidation) WithMaxLength(max int) *StringValidation {
	v.MaxLen = max
	return v
}

// WithPattern sets regex pattern
func (v *StringValidation) WithPattern(pattern *regexp.Regexp) *StringValidation {
	v.Pattern = pattern
	return v
}

// WithRequired sets if field is required
func (v *StringValidation) WithRequired(required bool) *StringValidation {
	v.Required = required
	return v
}

// Validate performs the validation
func (v *StringValidation) Validate() bool {
	if v.Required && v.Value == "" {
		return false
	}

	// Skip other checks for empty optional values
	if !v.Required && v.Value == "" {
		return true
	}

	if v.MinLen > 0 && len(v.Value) < v.MinLen {
		return false
	}
	if v.MaxLen > 0 && len(v.Value) > v.MaxLen {
		return false
	}
	if v.Pattern != nil && !v.Pattern.MatchString(v.Value) {
		return false
	}

	return true
}
