package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"healthshare/internal/models"
)

// CreateMedication inserts a medication and its schedules in one transaction.
func (d *DB) CreateMedication(ctx context.Context, m *models.Medication) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO medications (user_id, name, dosage, frequency, start_date, end_date, prescriber, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`, m.UserID, m.Name, m.Dosage, m.Frequency, m.StartDate, m.EndDate,
		m.Prescriber, m.Notes, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range m.Schedules {
		s := &m.Schedules[i]
		if err := tx.QueryRow(ctx, `
			INSERT INTO medication_schedules (medication_id, intake_time, amount, enabled)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, m.ID, s.Time, s.Amount, s.Enabled).Scan(&s.ID); err != nil {
			return fmt.Errorf("inserting schedule: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// ListMedications returns all medications for a user with their schedules,
// newest first.
func (d *DB) ListMedications(ctx context.Context, userID uuid.UUID) ([]models.Medication, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT id, user_id, name, dosage, frequency, start_date, end_date, prescriber, notes, status, created_at, updated_at
		FROM medications WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meds []models.Medication
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var m models.Medication
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.Dosage, &m.Frequency,
			&m.StartDate, &m.EndDate, &m.Prescriber, &m.Notes, &m.Status,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		byID[m.ID] = len(meds)
		meds = append(meds, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(meds) == 0 {
		return nil, nil
	}

	schedRows, err := d.Pool.Query(ctx, `
		SELECT ms.id, ms.medication_id, ms.intake_time, ms.amount, ms.enabled
		FROM medication_schedules ms
		JOIN medications m ON m.id = ms.medication_id
		WHERE m.user_id = $1
		ORDER BY ms.intake_time
	`, userID)
	if err != nil {
		return nil, err
	}
	defer schedRows.Close()

	for schedRows.Next() {
		var (
			s     models.MedicationSchedule
			medID uuid.UUID
		)
		if err := schedRows.Scan(&s.ID, &medID, &s.Time, &s.Amount, &s.Enabled); err != nil {
			return nil, err
		}
		if i, ok := byID[medID]; ok {
			meds[i].Schedules = append(meds[i].Schedules, s)
		}
	}
	return meds, schedRows.Err()
}

// UpdateMedication updates a user's medication and replaces its schedules.
func (d *DB) UpdateMedication(ctx context.Context, m *models.Medication) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		UPDATE medications
		SET name = $3, dosage = $4, frequency = $5, start_date = $6, end_date = $7,
		    prescriber = $8, notes = $9, status = $10, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING updated_at
	`, m.ID, m.UserID, m.Name, m.Dosage, m.Frequency, m.StartDate, m.EndDate,
		m.Prescriber, m.Notes, m.Status,
	).Scan(&m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrMedicationNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM medication_schedules WHERE medication_id = $1`, m.ID); err != nil {
		return err
	}
	for i := range m.Schedules {
		s := &m.Schedules[i]
		if err := tx.QueryRow(ctx, `
			INSERT INTO medication_schedules (medication_id, intake_time, amount, enabled)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, m.ID, s.Time, s.Amount, s.Enabled).Scan(&s.ID); err != nil {
			return fmt.Errorf("inserting schedule: %w", err)
		}
	}

	return tx.Commit(ctx)
}

// DeleteMedication removes a user's medication; schedules cascade.
func (d *DB) DeleteMedication(ctx context.Context, userID, id uuid.UUID) error {
	result, err := d.Pool.Exec(ctx,
		`DELETE FROM medications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrMedicationNotFound
	}
	return nil
}
