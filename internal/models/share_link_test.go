package models

import (
	"testing"
	"time"
)

func TestValidTTLDays(t *testing.T) {
	for _, d := range AllowedTTLDays {
		if !ValidTTLDays(d) {
			t.Errorf("ValidTTLDays(%d) = false, want true", d)
		}
	}

	for _, d := range []int{0, -1, 2, 14, 365} {
		if ValidTTLDays(d) {
			t.Errorf("ValidTTLDays(%d) = true, want false", d)
		}
	}
}

func TestShareLinkUsable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		active    bool
		expiresAt time.Time
		want      bool
	}{
		{"active and not expired", true, now.Add(time.Hour), true},
		{"revoked", false, now.Add(time.Hour), false},
		{"expired", true, now.Add(-time.Hour), false},
		{"expires exactly now", true, now, false},
		{"revoked and expired", false, now.Add(-time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &ShareLink{Active: tt.active, ExpiresAt: tt.expiresAt}
			if got := l.Usable(now); got != tt.want {
				t.Errorf("Usable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestShareLinkExpiredBoundary(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	l := &ShareLink{Active: true, ExpiresAt: now}
	if !l.Expired(now) {
		t.Error("Expired() at exact expiry = false, want true")
	}
	if l.Expired(now.Add(-time.Nanosecond)) {
		t.Error("Expired() just before expiry = true, want false")
	}
}
