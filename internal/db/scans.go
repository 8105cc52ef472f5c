package db

import (
	"context"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

// CreateScan inserts an imaging record for a user.
func (d *DB) CreateScan(ctx context.Context, s *models.Scan) error {
	query := `
		INSERT INTO scans (user_id, title, scan_type, scan_date, image_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return d.Pool.QueryRow(ctx, query,
		s.UserID, s.Title, s.ScanType, s.ScanDate, s.ImageURL, s.Notes,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListScans returns all scans for a user, newest scan date first.
func (d *DB) ListScans(ctx context.Context, userID uuid.UUID) ([]models.Scan, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, user_id, title, scan_type, scan_date, image_url, notes, created_at
		FROM scans WHERE user_id = $1
		ORDER BY scan_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []models.Scan
	for rows.Next() {
		var s models.Scan
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Title, &s.ScanType, &s.ScanDate,
			&s.ImageURL, &s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		scans = append(scans, s)
	}
	return scans, rows.Err()
}

// DeleteScan removes a user's scan.
func (d *DB) DeleteScan(ctx context.Context, userID, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM scans WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrScanNotFound
	}
	return nil
}
