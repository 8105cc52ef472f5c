package validation

import (
	"strings"
	"testing"
)

func TestValidateToken(t *testing.T) {
	valid := []string{
		"wXx0eF3wJ9qL2mN8pQ7rS1tU4vY6zA5b",
		"abcdefghij1234567890",
		"A-Za-z0_9-A-Za-z0_9-",
	}
	for _, tok := range valid {
		if !ValidateToken(tok) {
			t.Errorf("ValidateToken(%q) = false, want true", tok)
		}
	}

	invalid := []string{
		"",
		"short",
		"has spaces in the middle!",
		"contains/slash/characters/abc",
		"token+with+plus+characters+x",
		strings.Repeat("a", 80),
	}
	for _, tok := range invalid {
		if ValidateToken(tok) {
			t.Errorf("ValidateToken(%q) = true, want false", tok)
		}
	}
}

func TestValidateConditionStatus(t *testing.T) {
	for _, s := range []string{"active", "resolved", "chronic"} {
		if !ValidateConditionStatus(s) {
			t.Errorf("ValidateConditionStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "ACTIVE", "cured", "ongoing"} {
		if ValidateConditionStatus(s) {
			t.Errorf("ValidateConditionStatus(%q) = true, want false", s)
		}
	}
}

func TestValidateScheduleTime(t *testing.T) {
	for _, s := range []string{"00:00", "08:30", "23:59"} {
		if !ValidateScheduleTime(s) {
			t.Errorf("ValidateScheduleTime(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "24:00", "8:3", "noon", "12:60"} {
		if ValidateScheduleTime(s) {
			t.Errorf("ValidateScheduleTime(%q) = true, want false", s)
		}
	}
}

func TestValidateFileURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://files.example.com/scan.png", true},
		{"http://localhost:9000/bucket/result.pdf", true},
		{"", false},
		{"javascript:alert(1)", false},
		{"data:text/html;base64,PHNjcmlwdD4=", false},
		{"ftp://example.com/file", false},
		{"https://", false},
	}

	for _, tt := range tests {
		got, _ := ValidateFileURL(tt.url)
		if got != tt.want {
			t.Errorf("ValidateFileURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}
