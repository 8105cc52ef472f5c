package sharing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

// LinkStore is the persistence capability the share service needs. All
// mutating calls are scoped by the verified owner id so that one patient can
// never touch another patient's links, whatever ids they supply.
type LinkStore interface {
	// InsertShareLink persists a fully populated link. Returns
	// ErrDuplicateToken if the token column collides.
	InsertShareLink(ctx context.Context, link *models.ShareLink) error

	// GetShareLinkByToken returns the link with the given token, snapshot
	// included. Returns ErrLinkNotFound if no such token exists.
	GetShareLinkByToken(ctx context.Context, token string) (*models.ShareLink, error)

	// ListShareLinksByOwner returns all of the owner's links ordered by
	// creation time descending. Snapshots are omitted from the results.
	ListShareLinksByOwner(ctx context.Context, owner uuid.UUID) ([]models.ShareLink, error)

	// DeactivateShareLink sets active=false on the owner's link. Already
	// inactive links are a no-op success. Returns ErrLinkNotFound when the
	// id does not exist or belongs to another owner.
	DeactivateShareLink(ctx context.Context, owner, id uuid.UUID) error

	// DeleteShareLink hard-removes the owner's link. Returns
	// ErrLinkNotFound when the id does not exist or belongs to another
	// owner.
	DeleteShareLink(ctx context.Context, owner, id uuid.UUID) error

	// RecordShareLinkAccess atomically increments access_count and sets
	// last_accessed_at, returning the new count. The increment must happen
	// in the storage layer so concurrent redemptions never lose updates.
	RecordShareLinkAccess(ctx context.Context, id uuid.UUID, at time.Time) (int, error)
}

// RecordStore is the read-only view of the patient record store the snapshot
// assembler captures from.
type RecordStore interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)

	// GetProfile returns nil without error when the patient has not filled
	// in a profile yet.
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.PatientProfile, error)
	ListConditions(ctx context.Context, userID uuid.UUID) ([]models.Condition, error)
	ListMedications(ctx context.Context, userID uuid.UUID) ([]models.Medication, error)
	ListScans(ctx context.Context, userID uuid.UUID) ([]models.Scan, error)
	ListLabResults(ctx context.Context, userID uuid.UUID) ([]models.LabResult, error)
}
