package sharing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"healthshare/internal/models"
)

// Assembler captures point-in-time snapshots of a patient's records.
type Assembler struct {
	records RecordStore
	now     nowFunc
}

// NewAssembler creates a snapshot assembler over the given record store.
func NewAssembler(records RecordStore) *Assembler {
	return &Assembler{records: records, now: defaultNow}
}

// Capture reads the owner's profile, conditions, medications, scans and lab
// results as of the call instant and returns them as one immutable snapshot
// with no reference back to the live store. Any storage failure aborts the
// whole capture with ErrSnapshotUnavailable; there are no partial snapshots.
func (a *Assembler) Capture(ctx context.Context, owner uuid.UUID) (*models.Snapshot, error) {
	profile, err := a.records.GetProfile(ctx, owner)
	if err != nil {
		return nil, captureErr("profile", err)
	}

	conditions, err := a.records.ListConditions(ctx, owner)
	if err != nil {
		return nil, captureErr("conditions", err)
	}

	medications, err := a.records.ListMedications(ctx, owner)
	if err != nil {
		return nil, captureErr("medications", err)
	}

	scans, err := a.records.ListScans(ctx, owner)
	if err != nil {
		return nil, captureErr("scans", err)
	}

	labResults, err := a.records.ListLabResults(ctx, owner)
	if err != nil {
		return nil, captureErr("lab results", err)
	}

	return &models.Snapshot{
		CapturedAt:  a.now(),
		Profile:     cloneProfile(profile),
		Conditions:  cloneConditions(conditions),
		Medications: cloneMedications(medications),
		Scans:       append([]models.Scan(nil), scans...),
		LabResults:  append([]models.LabResult(nil), labResults...),
	}, nil
}

func captureErr(what string, err error) error {
	return fmt.Errorf("%w: reading %s: %v", ErrSnapshotUnavailable, what, err)
}

// The clone helpers copy every pointer and slice field so a snapshot stays
// untouched even when the backing store hands out shared memory (the
// in-memory store used in tests does; the SQL store allocates fresh rows
// anyway).

func cloneProfile(p *models.PatientProfile) *models.PatientProfile {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Allergies = append([]string(nil), p.Allergies...)
	if p.DateOfBirth != nil {
		dob := *p.DateOfBirth
		cp.DateOfBirth = &dob
	}
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		cp.EmergencyContact = &ec
	}
	return &cp
}

func cloneConditions(in []models.Condition) []models.Condition {
	return append([]models.Condition(nil), in...)
}

func cloneMedications(in []models.Medication) []models.Medication {
	out := append([]models.Medication(nil), in...)
	for i := range out {
		out[i].Schedules = append([]models.MedicationSchedule(nil), out[i].Schedules...)
		if out[i].EndDate != nil {
			end := *out[i].EndDate
			out[i].EndDate = &end
		}
	}
	return out
}
