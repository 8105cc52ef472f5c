package sharing

import (
	"time"

	"healthshare/internal/models"
)

// RedemptionStatus is the outcome of resolving a token.
type RedemptionStatus int

const (
	// StatusOK: the token resolves to a currently valid link.
	StatusOK RedemptionStatus = iota
	// StatusNotFound: no link has this token. Malformed tokens, deleted
	// links and tokens that never existed are indistinguishable here on
	// purpose.
	StatusNotFound
	// StatusRevoked: the link exists but the owner deactivated it.
	StatusRevoked
	// StatusExpired: the link exists and is active but its expiry passed.
	StatusExpired
)

// String returns the outcome label used in logs and metrics.
func (s RedemptionStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusRevoked:
		return "revoked"
	case StatusExpired:
		return "expired"
	}
	return "unknown"
}

// Redemption is the result of Service.Redeem. Snapshot, ExpiresAt and
// AccessCount are only set when Status is StatusOK (ExpiresAt is also set for
// StatusExpired).
type Redemption struct {
	Status      RedemptionStatus
	Snapshot    *models.Snapshot
	ExpiresAt   time.Time
	AccessCount int
}
