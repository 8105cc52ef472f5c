package models

import (
	"time"

	"github.com/google/uuid"
)

// Condition status values.
const (
	ConditionActive   = "active"
	ConditionResolved = "resolved"
	ConditionChronic  = "chronic"
)

// Medication status values.
const (
	MedicationActive       = "active"
	MedicationCompleted    = "completed"
	MedicationDiscontinued = "discontinued"
)

// EmergencyContact is embedded in a patient profile.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// PatientProfile holds a patient's demographic and emergency information.
// One row per user; absent until the patient fills it in.
type PatientProfile struct {
	UserID           uuid.UUID         `json:"user_id"`
	FullName         string            `json:"full_name"`
	DateOfBirth      *time.Time        `json:"date_of_birth,omitempty"`
	BloodType        string            `json:"blood_type,omitempty"`
	Allergies        []string          `json:"allergies,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Condition is a diagnosed medical condition.
type Condition struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	Condition     string    `json:"condition"`
	DiagnosisDate time.Time `json:"diagnosis_date"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"` // active, resolved, chronic
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MedicationSchedule is one scheduled intake time for a medication.
type MedicationSchedule struct {
	ID      uuid.UUID `json:"id"`
	Time    string    `json:"time"`   // HH:mm, 24-hour
	Amount  string    `json:"amount"` // e.g. "1 tablet", "100mg"
	Enabled bool      `json:"enabled"`
}

// Medication is a prescribed or self-reported medication.
type Medication struct {
	ID         uuid.UUID            `json:"id"`
	UserID     uuid.UUID            `json:"user_id"`
	Name       string               `json:"name"`
	Dosage     string               `json:"dosage"`
	Frequency  string               `json:"frequency"`
	StartDate  time.Time            `json:"start_date"`
	EndDate    *time.Time           `json:"end_date,omitempty"`
	Prescriber string               `json:"prescriber,omitempty"`
	Notes      string               `json:"notes,omitempty"`
	Status     string               `json:"status"` // active, completed, discontinued
	Schedules  []MedicationSchedule `json:"schedules,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// Scan is an imaging record (X-ray, MRI, ...) with a stored image URL.
type Scan struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	ScanType  string    `json:"scan_type"`
	ScanDate  time.Time `json:"scan_date"`
	ImageURL  string    `json:"image_url"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LabResult is a lab test record with a stored document URL.
type LabResult struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	TestType  string    `json:"test_type"`
	TestDate  time.Time `json:"test_date"`
	FileURL   string    `json:"file_url"` // PDF or image
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
