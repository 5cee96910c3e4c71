package validation

import (
	"strings"
	"testing"
)

func TestValidateSituation(t *testing.T) {
	tests := []struct {
		name      string
		situation string
		valid     bool
		wantMsg   string
	}{
		{"simple", "late for work", true, ""},
		{"unicode", "olvidé el cumpleaños", true, ""},
		{"empty string", "", false, "Please describe your situation first!"},
		{"whitespace only", "  \t\n ", false, "Please describe your situation first!"},
		{"max length", strings.Repeat("a", MaxSituationLength), true, ""},
		{"too long", strings.Repeat("a", MaxSituationLength+1), false, "Situation is too long"},
		{"multibyte at max length", strings.Repeat("é", MaxSituationLength), true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateSituation(tt.situation)
			if valid != tt.valid {
				t.Errorf("ValidateSituation(%q) valid = %v, want %v", tt.situation, valid, tt.valid)
			}
			if msg != tt.wantMsg {
				t.Errorf("ValidateSituation(%q) msg = %q, want %q", tt.situation, msg, tt.wantMsg)
			}
		})
	}
}

func TestNormalizeSituation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Late For Work", "late for work"},
		{"  missed deadline \n", "missed deadline"},
		{"", ""},
		{"   ", ""},
		{"ALREADY lower", "already lower"},
	}

	for _, tt := range tests {
		if got := NormalizeSituation(tt.in); got != tt.want {
			t.Errorf("NormalizeSituation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		valid   bool
		wantMsg string
	}{
		{"valid https", "https://api.together.xyz/v1/chat/completions", true, ""},
		{"valid http with port", "http://localhost:8888/.netlify/functions/together-proxy", true, ""},
		{"empty string", "", false, "URL is required"},
		{"relative url", "/api/together-proxy", false, "URL must use http:// or https:// scheme"},
		{"javascript scheme", "javascript:alert(1)", false, "URL must use http:// or https:// scheme"},
		{"uppercase scheme", "HTTPS://example.com", true, ""},
		{"scheme only", "https://", false, "URL must have a valid host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateURL(tt.url)
			if valid != tt.valid {
				t.Errorf("ValidateURL(%q) valid = %v, want %v", tt.url, valid, tt.valid)
			}
			if !valid && msg != tt.wantMsg {
				t.Errorf("ValidateURL(%q) msg = %q, want %q", tt.url, msg, tt.wantMsg)
			}
		})
	}
}
