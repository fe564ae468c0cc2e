package validate

import (
	"regexp"
	"time"
)

// Field validators are pure checks: given a raw value they return a message
// describing the problem, or "" when the value passes. They never panic and
// have no side effects.

var (
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]{2,50}$`)
	phoneRe = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	dateRe  = regexp.MustCompile(`^(0[1-9]|1[0-2])/(0[1-9]|[12]\d|3[01])/\d{4}$`)
)

func Name(value string) string {
	if !nameRe.MatchString(value) {
		return "Names should only contain letters, hyphens, and apostrophes"
	}
	return ""
}

func Phone(value string) string {
	if !phoneRe.MatchString(value) {
		return "Phone must be in (XXX) XXX-XXXX format"
	}
	return ""
}

func Email(value string) string {
	if !emailRe.MatchString(value) {
		return "Invalid email address"
	}
	return ""
}

func ZipCode(value string) string {
	if !zipRe.MatchString(value) {
		return "ZIP code must be 5 digits or ZIP+4 format"
	}
	return ""
}

// Date checks MM/DD/YYYY shape and that the value is a real calendar date,
// so 02/31/2024 fails even though it matches the pattern.
func Date(value string) string {
	if !dateRe.MatchString(value) {
		return "Date must be in MM/DD/YYYY format"
	}
	if _, err := time.Parse("01/02/2006", value); err != nil {
		return "Invalid date"
	}
	return ""
}
