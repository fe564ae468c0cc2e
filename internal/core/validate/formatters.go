package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// Deterministic reformatters. Each returns the input unchanged when it cannot
// produce an unambiguous fix, which is what makes them safe to synthesize
// corrections from.

var (
	nonDigitRe   = regexp.MustCompile(`\D`)
	multiSpaceRe = regexp.MustCompile(`\s+`)
	nonNameRe    = regexp.MustCompile(`[^a-zA-Z\s'-]`)
)

// FormatPhone strips everything but digits and reformats to (XXX) XXX-XXXX
// iff exactly 10 digits remain.
func FormatPhone(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) == 10 {
		return fmt.Sprintf("(%s) %s-%s", digits[:3], digits[3:6], digits[6:])
	}
	return value
}

func FormatZipCode(value string) string {
	digits := nonDigitRe.ReplaceAllString(value, "")
	if len(digits) == 9 {
		return digits[:5] + "-" + digits[5:]
	}
	if len(digits) >= 5 {
		return digits[:5]
	}
	return value
}

func FormatEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// FormatName collapses whitespace, drops characters a name cannot contain,
// and title-cases each word.
func FormatName(value string) string {
	cleaned := nonNameRe.ReplaceAllString(strings.TrimSpace(value), "")
	cleaned = multiSpaceRe.ReplaceAllString(cleaned, " ")
	words := strings.Split(cleaned, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
