package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"healthshare/internal/models"
	"healthshare/internal/sharing"
)

// The DB implements both storage capabilities the share service needs.
var (
	_ sharing.LinkStore   = (*DB)(nil)
	_ sharing.RecordStore = (*DB)(nil)
)

// InsertShareLink persists a fully populated share link, snapshot included.
func (d *DB) InsertShareLink(ctx context.Context, link *models.ShareLink) error {
	snapshot, err := json.Marshal(link.Snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	query := `
		INSERT INTO share_links (id, owner_user_id, token, created_at, expires_at, active, access_count, snapshot)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = d.Pool.Exec(ctx, query,
		link.ID, link.OwnerUserID, link.Token, link.CreatedAt,
		link.ExpiresAt, link.Active, link.AccessCount, snapshot,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sharing.ErrDuplicateToken
		}
		return err
	}
	return nil
}

// GetShareLinkByToken returns the link holding the given token, snapshot
// included. The token column is uniquely indexed; this is the only lookup the
// redemption path uses.
func (d *DB) GetShareLinkByToken(ctx context.Context, token string) (*models.ShareLink, error) {
	var (
		link     models.ShareLink
		snapshot []byte
	)
	err := d.Pool.QueryRow(ctx, `
		SELECT id, owner_user_id, token, created_at, expires_at, active, access_count, last_accessed_at, snapshot
		FROM share_links WHERE token = $1
	`, token).Scan(
		&link.ID, &link.OwnerUserID, &link.Token, &link.CreatedAt,
		&link.ExpiresAt, &link.Active, &link.AccessCount,
		&link.LastAccessedAt, &snapshot,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sharing.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}

	link.Snapshot = &models.Snapshot{}
	if err := json.Unmarshal(snapshot, link.Snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &link, nil
}

// GetShareLinkByID returns the owner's link without its snapshot payload.
func (d *DB) GetShareLinkByID(ctx context.Context, owner, id uuid.UUID) (*models.ShareLink, error) {
	var link models.ShareLink
	err := d.Pool.QueryRow(ctx, `
		SELECT id, owner_user_id, token, created_at, expires_at, active, access_count, last_accessed_at
		FROM share_links WHERE id = $1 AND owner_user_id = $2
	`, id, owner).Scan(
		&link.ID, &link.OwnerUserID, &link.Token, &link.CreatedAt,
		&link.ExpiresAt, &link.Active, &link.AccessCount, &link.LastAccessedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, sharing.ErrLinkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// ListShareLinksByOwner returns the owner's links newest first, without
// snapshot payloads.
func (d *DB) ListShareLinksByOwner(ctx context.Context, owner uuid.UUID) ([]models.ShareLink, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, owner_user_id, token, created_at, expires_at, active, access_count, last_accessed_at
		FROM share_links WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []models.ShareLink
	for rows.Next() {
		var link models.ShareLink
		if err := rows.Scan(
			&link.ID, &link.OwnerUserID, &link.Token, &link.CreatedAt,
			&link.ExpiresAt, &link.Active, &link.AccessCount, &link.LastAccessedAt,
		); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// DeactivateShareLink sets active=false on the owner's link. The update
// matches already-inactive rows, so repeated revokes stay a no-op success;
// only an unknown or foreign id reports not found.
func (d *DB) DeactivateShareLink(ctx context.Context, owner, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx, `
		UPDATE share_links SET active = FALSE
		WHERE id = $1 AND owner_user_id = $2
	`, id, owner)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return sharing.ErrLinkNotFound
	}
	return nil
}

// DeleteShareLink hard-removes the owner's link.
func (d *DB) DeleteShareLink(ctx context.Context, owner, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM share_links WHERE id = $1 AND owner_user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return sharing.ErrLinkNotFound
	}
	return nil
}

// RecordShareLinkAccess bumps the access counter in a single UPDATE so that
// concurrent redemptions serialize in the database instead of racing in
// application code.
func (d *DB) RecordShareLinkAccess(ctx context.Context, id uuid.UUID, at time.Time) (int, error) {
	var count int
	err := d.Pool.QueryRow(ctx, `
		UPDATE share_links
		SET access_count = access_count + 1, last_accessed_at = $2
		WHERE id = $1
		RETURNING access_count
	`, id, at).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, sharing.ErrLinkNotFound
	}
	return count, err
}

// PurgeExpiredShareLinks deletes links whose expiry is older than the cutoff.
// Used by the retention job; correctness of expiry never depends on it.
func (d *DB) PurgeExpiredShareLinks(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM share_links WHERE expires_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
