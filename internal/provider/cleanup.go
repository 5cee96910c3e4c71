package provider

import (
	"regexp"
	"strings"
)

// leadingPatterns are preambles language models put before the excuse.
var leadingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^Here'?s an excuse you could use:`),
	regexp.MustCompile(`(?i)^Here'?s a (good|creative|believable|plausible) excuse:`),
	regexp.MustCompile(`(?i)^Excuse:`),
	regexp.MustCompile(`(?i)^An excuse for this situation could be:`),
	regexp.MustCompile(`(?i)^You could say( that)?:`),
	regexp.MustCompile(`(?i)^I would suggest:`),
	regexp.MustCompile(`^I'm sorry, but I can't generate excuses for`),
}

var bracketed = regexp.MustCompile(`\[.*?\]`)

// Cleanup strips model boilerplate from generated text: known leading
// preambles, one pair of wrapping double quotes and [bracketed] notes.
// Passes repeat until nothing changes, so Cleanup(Cleanup(x)) == Cleanup(x).
func Cleanup(text string) string {
	for {
		next := cleanupPass(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanupPass(text string) string {
	cleaned := strings.TrimSpace(text)
	for _, p := range leadingPatterns {
		cleaned = strings.TrimSpace(p.ReplaceAllString(cleaned, ""))
	}

	cleaned = unquote(cleaned)
	if strings.HasPrefix(cleaned, `"`) && !strings.Contains(cleaned[1:], `"`) {
		// A lone opening quote with no closing one.
		cleaned = strings.TrimSpace(cleaned[1:])
	}

	return strings.TrimSpace(bracketed.ReplaceAllString(cleaned, ""))
}

func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
