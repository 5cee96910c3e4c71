package validation

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxSituationLength bounds the situation text accepted from callers, in characters.
const MaxSituationLength = 1000

// ValidateSituation checks that a situation description is usable.
// Returns a user-facing message when it is not.
func ValidateSituation(situation string) (bool, string) {
	if strings.TrimSpace(situation) == "" {
		return false, "Please describe your situation first!"
	}
	if utf8.RuneCountInString(situation) > MaxSituationLength {
		return false, "Situation is too long"
	}
	return true, ""
}

// NormalizeSituation trims and lowercases a situation so cache lookups are
// insensitive to case and surrounding whitespace.
func NormalizeSituation(situation string) string {
	return strings.ToLower(strings.TrimSpace(situation))
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// Used for the configured generation endpoint and proxy.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
