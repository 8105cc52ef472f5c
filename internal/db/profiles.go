package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"healthshare/internal/models"
)

// UpsertProfile creates or replaces the patient's profile.
func (d *DB) UpsertProfile(ctx context.Context, profile *models.PatientProfile) error {
	var contact []byte
	if profile.EmergencyContact != nil {
		var err error
		contact, err = json.Marshal(profile.EmergencyContact)
		if err != nil {
			return fmt.Errorf("encoding emergency contact: %w", err)
		}
	}

	query := `
		INSERT INTO patient_profiles (user_id, full_name, date_of_birth, blood_type, allergies, emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    date_of_birth = EXCLUDED.date_of_birth,
		    blood_type = EXCLUDED.blood_type,
		    allergies = EXCLUDED.allergies,
		    emergency_contact = EXCLUDED.emergency_contact,
		    updated_at = NOW()
		RETURNING updated_at
	`
	allergies := profile.Allergies
	if allergies == nil {
		allergies = []string{}
	}
	return d.Pool.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.DateOfBirth,
		profile.BloodType, allergies, contact,
	).Scan(&profile.UpdatedAt)
}

// GetProfile returns the patient's profile, or nil without error when the
// patient has not filled one in (sharing.RecordStore contract).
func (d *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*models.PatientProfile, error) {
	var (
		profile models.PatientProfile
		contact []byte
	)
	err := d.Pool.QueryRow(ctx, `
		SELECT user_id, full_name, date_of_birth, blood_type, allergies, emergency_contact, updated_at
		FROM patient_profiles WHERE user_id = $1
	`, userID).Scan(
		&profile.UserID, &profile.FullName, &profile.DateOfBirth,
		&profile.BloodType, &profile.Allergies, &contact, &profile.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(contact) > 0 {
		profile.EmergencyContact = &models.EmergencyContact{}
		if err := json.Unmarshal(contact, profile.EmergencyContact); err != nil {
			return nil, fmt.Errorf("decoding emergency contact: %w", err)
		}
	}
	return &profile, nil
}
