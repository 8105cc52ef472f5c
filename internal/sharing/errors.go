package sharing

import "errors"

// Sentinel errors shared between the service and its storage backends.
var (
	// ErrInvalidTTL means the requested expiration is not one of the
	// allowed choices.
	ErrInvalidTTL = errors.New("invalid share link TTL")

	// ErrOwnerNotFound means create referenced a user id that does not
	// resolve in the record store.
	ErrOwnerNotFound = errors.New("owner user not found")

	// ErrSnapshotUnavailable means the record store failed while capturing
	// a snapshot; link creation is aborted, nothing is persisted.
	ErrSnapshotUnavailable = errors.New("record snapshot unavailable")

	// ErrLinkNotFound means no share link matches the given token or id.
	ErrLinkNotFound = errors.New("share link not found")

	// ErrDuplicateToken means an insert collided with an existing token.
	ErrDuplicateToken = errors.New("share link token already exists")
)
