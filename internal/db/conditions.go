package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"healthshare/internal/models"
)

// CreateCondition inserts a medical condition for a user.
func (d *DB) CreateCondition(ctx context.Context, c *models.Condition) error {
	query := `
		INSERT INTO conditions (user_id, condition, diagnosis_date, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return d.Pool.QueryRow(ctx, query,
		c.UserID, c.Condition, c.DiagnosisDate, c.Description, c.Status,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// ListConditions returns all conditions for a user, newest diagnosis first.
func (d *DB) ListConditions(ctx context.Context, userID uuid.UUID) ([]models.Condition, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, user_id, condition, diagnosis_date, description, status, created_at, updated_at
		FROM conditions WHERE user_id = $1
		ORDER BY diagnosis_date DESC, created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conditions []models.Condition
	for rows.Next() {
		var c models.Condition
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Condition, &c.DiagnosisDate,
			&c.Description, &c.Status, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		conditions = append(conditions, c)
	}
	return conditions, rows.Err()
}

// UpdateCondition updates a user's condition. Scoped by user id so a patient
// can only touch their own rows.
func (d *DB) UpdateCondition(ctx context.Context, c *models.Condition) error {
	query := `
		UPDATE conditions
		SET condition = $3, diagnosis_date = $4, description = $5, status = $6, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`
	err := d.Pool.QueryRow(ctx, query,
		c.ID, c.UserID, c.Condition, c.DiagnosisDate, c.Description, c.Status,
	).Scan(&c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrConditionNotFound
	}
	return err
}

// DeleteCondition removes a user's condition.
func (d *DB) DeleteCondition(ctx context.Context, userID, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM conditions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrConditionNotFound
	}
	return nil
}
