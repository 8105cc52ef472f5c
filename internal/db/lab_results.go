package db

import (
	"context"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

// CreateLabResult inserts a lab result record for a user.
func (d *DB) CreateLabResult(ctx context.Context, r *models.LabResult) error {
	query := `
		INSERT INTO lab_results (user_id, title, test_type, test_date, file_url, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return d.Pool.QueryRow(ctx, query,
		r.UserID, r.Title, r.TestType, r.TestDate, r.FileURL, r.Notes,
	).Scan(&r.ID, &r.CreatedAt)
}

// ListLabResults returns all lab results for a user, newest test date first.
func (d *DB) ListLabResults(ctx context.Context, userID uuid.UUID) ([]models.LabResult, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, user_id, title, test_type, test_date, file_url, notes, created_at
		FROM lab_results WHERE user_id = $1
		ORDER BY test_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.LabResult
	for rows.Next() {
		var r models.LabResult
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Title, &r.TestType, &r.TestDate,
			&r.FileURL, &r.Notes, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// DeleteLabResult removes a user's lab result.
func (d *DB) DeleteLabResult(ctx context.Context, userID, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM lab_results WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrLabResultNotFound
	}
	return nil
}
