package sharing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

type nowFunc func() time.Time

func defaultNow() time.Time { return time.Now() }

// insertRetries bounds token regeneration on the (practically unreachable)
// unique-violation of a 256-bit token.
const insertRetries = 3

// Service is the share link registry and redemption service. All methods are
// safe for concurrent use; per-link ordering of access accounting is
// guaranteed by the store's atomic increment, not by locking here.
type Service struct {
	links     LinkStore
	assembler *Assembler
	records   RecordStore

	// loc is the reference timezone "N days" expiry is anchored to.
	loc *time.Location

	// liveRecords switches redemption from the stored snapshot to a fresh
	// capture of the owner's current records. This reproduces the live
	// variant of the reference system and is off by default.
	liveRecords bool

	now nowFunc
}

// NewService creates a share service over the given stores. loc anchors
// expiry normalization; liveRecords selects live-record redemption instead of
// stored snapshots.
func NewService(links LinkStore, records RecordStore, loc *time.Location, liveRecords bool) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		links:       links,
		assembler:   NewAssembler(records),
		records:     records,
		loc:         loc,
		liveRecords: liveRecords,
		now:         defaultNow,
	}
}

// Create issues a new share link for the owner with the given TTL in days.
// The owner's records are captured synchronously; nothing is persisted if the
// capture fails.
func (s *Service) Create(ctx context.Context, owner uuid.UUID, ttlDays int) (*models.ShareLink, error) {
	if !models.ValidTTLDays(ttlDays) {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidTTL, ttlDays)
	}

	exists, err := s.records.UserExists(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("resolving owner: %w", err)
	}
	if !exists {
		return nil, ErrOwnerNotFound
	}

	snapshot, err := s.assembler.Capture(ctx, owner)
	if err != nil {
		return nil, err
	}

	now := s.now()
	link := &models.ShareLink{
		ID:          uuid.New(),
		OwnerUserID: owner,
		CreatedAt:   now,
		ExpiresAt:   s.expiry(now, ttlDays),
		Active:      true,
		AccessCount: 0,
		Snapshot:    snapshot,
	}

	for attempt := 0; attempt < insertRetries; attempt++ {
		token, err := GenerateToken()
		if err != nil {
			return nil, err
		}
		link.Token = token

		err = s.links.InsertShareLink(ctx, link)
		if err == nil {
			return link, nil
		}
		if !errors.Is(err, ErrDuplicateToken) {
			return nil, fmt.Errorf("persisting share link: %w", err)
		}
	}
	return nil, ErrDuplicateToken
}

// expiry returns end-of-day, ttlDays from now, in the reference timezone, so
// that "7 days" reads as a full seventh day to the patient.
func (s *Service) expiry(now time.Time, ttlDays int) time.Time {
	target := now.In(s.loc).AddDate(0, 0, ttlDays)
	y, m, d := target.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), s.loc)
}

// List returns the owner's share links, newest first. Unless includeExpired
// is set, links that are revoked or past expiry are filtered out using the
// single Usable predicate.
func (s *Service) List(ctx context.Context, owner uuid.UUID, includeExpired bool) ([]models.ShareLink, error) {
	links, err := s.links.ListShareLinksByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("listing share links: %w", err)
	}
	if includeExpired {
		return links, nil
	}

	now := s.now()
	usable := links[:0]
	for _, l := range links {
		if l.Usable(now) {
			usable = append(usable, l)
		}
	}
	return usable, nil
}

// Revoke permanently deactivates the owner's link. Revoking an
// already-revoked or expired link is a no-op success; an unknown or foreign
// id returns ErrLinkNotFound.
func (s *Service) Revoke(ctx context.Context, owner, id uuid.UUID) error {
	return s.links.DeactivateShareLink(ctx, owner, id)
}

// Delete hard-removes the owner's link. An unknown or foreign id returns
// ErrLinkNotFound.
func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.links.DeleteShareLink(ctx, owner, id)
}

// Redeem resolves a bare token to a snapshot or a precise failure status.
// Check order is existence, then revocation, then expiry, so the caller can
// distinguish the three even though the public surface may choose not to.
// Every Ok redemption increments the access counter; if that accounting write
// fails the error is surfaced instead of silently dropping the count or the
// redemption.
func (s *Service) Redeem(ctx context.Context, token string) (*Redemption, error) {
	link, err := s.links.GetShareLinkByToken(ctx, token)
	if errors.Is(err, ErrLinkNotFound) {
		return &Redemption{Status: StatusNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up token: %w", err)
	}

	if !link.Active {
		return &Redemption{Status: StatusRevoked}, nil
	}

	now := s.now()
	if link.Expired(now) {
		return &Redemption{Status: StatusExpired, ExpiresAt: link.ExpiresAt}, nil
	}

	snapshot := link.Snapshot
	if s.liveRecords {
		snapshot, err = s.assembler.Capture(ctx, link.OwnerUserID)
		if err != nil {
			return nil, err
		}
	}

	count, err := s.links.RecordShareLinkAccess(ctx, link.ID, now)
	if err != nil {
		return nil, fmt.Errorf("recording access: %w", err)
	}

	return &Redemption{
		Status:      StatusOK,
		Snapshot:    snapshot,
		ExpiresAt:   link.ExpiresAt,
		AccessCount: count,
	}, nil
}
