package models

import (
	"time"

	"github.com/google/uuid"
)

// AllowedTTLDays are the expiration choices a patient can pick when creating
// a share link.
var AllowedTTLDays = []int{1, 7, 30, 90}

// ValidTTLDays reports whether d is one of the allowed TTL choices.
func ValidTTLDays(d int) bool {
	for _, v := range AllowedTTLDays {
		if v == d {
			return true
		}
	}
	return false
}

// Snapshot is the point-in-time copy of a patient's records embedded in a
// share link at creation. It has no reference back to the live tables: once
// captured it never changes, no matter what the patient edits or deletes
// afterwards.
type Snapshot struct {
	CapturedAt  time.Time       `json:"captured_at"`
	Profile     *PatientProfile `json:"profile,omitempty"`
	Conditions  []Condition     `json:"conditions"`
	Medications []Medication    `json:"medications"`
	Scans       []Scan          `json:"scans"`
	LabResults  []LabResult     `json:"lab_results"`
}

// ShareLink is a bearer capability: whoever holds the token can read the
// embedded snapshot until the link expires or the owner revokes it.
type ShareLink struct {
	ID             uuid.UUID  `json:"id"`
	OwnerUserID    uuid.UUID  `json:"owner_user_id"`
	Token          string     `json:"token"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	Active         bool       `json:"active"` // one-way: true -> false on revoke, never back
	AccessCount    int        `json:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	Snapshot       *Snapshot  `json:"snapshot,omitempty"`
}

// Usable reports whether the link can currently be redeemed. This is the one
// definition of "currently usable"; list filtering and anything else that
// needs the combined check must go through it rather than re-deriving the
// expiry comparison.
func (l *ShareLink) Usable(now time.Time) bool {
	return l.Active && now.Before(l.ExpiresAt)
}

// Expired reports whether the link's expiry has passed. ExpiresAt itself
// counts as expired.
func (l *ShareLink) Expired(now time.Time) bool {
	return !now.Before(l.ExpiresAt)
}
