package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"healthshare/internal/db"
	"healthshare/internal/models"
	"healthshare/internal/validation"
)

// MedicationHandler handles medication records and their intake schedules via
// JSON API.
type MedicationHandler struct {
	db *db.DB
}

// NewMedicationHandler creates a new API medication handler.
func NewMedicationHandler(database *db.DB) *MedicationHandler {
	return &MedicationHandler{db: database}
}

type medicationBody struct {
	Name       string     `json:"name"`
	Dosage     string     `json:"dosage"`
	Frequency  string     `json:"frequency"`
	StartDate  time.Time  `json:"start_date"`
	EndDate    *time.Time `json:"end_date"`
	Prescriber string     `json:"prescriber"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
	Schedules  []struct {
		Time    string `json:"time"`
		Amount  string `json:"amount"`
		Enabled bool   `json:"enabled"`
	} `json:"schedules"`
}

func (b *medicationBody) validate() (string, bool) {
	if b.Name == "" {
		return "name is required", false
	}
	if b.Status == "" {
		b.Status = models.MedicationActive
	}
	if !validation.ValidateMedicationStatus(b.Status) {
		return "status must be active, completed, or discontinued", false
	}
	for _, s := range b.Schedules {
		if !validation.ValidateScheduleTime(s.Time) {
			return "schedule time must be HH:mm", false
		}
	}
	return "", true
}

func (b *medicationBody) toModel(userID uuid.UUID) *models.Medication {
	m := &models.Medication{
		UserID:     userID,
		Name:       b.Name,
		Dosage:     b.Dosage,
		Frequency:  b.Frequency,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		Prescriber: b.Prescriber,
		Notes:      b.Notes,
		Status:     b.Status,
	}
	for _, s := range b.Schedules {
		m.Schedules = append(m.Schedules, models.MedicationSchedule{
			Time:    s.Time,
			Amount:  s.Amount,
			Enabled: s.Enabled,
		})
	}
	return m
}

// List returns all of the authenticated patient's medications with schedules.
func (h *MedicationHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	medications, err := h.db.ListMedications(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch medications")
	}
	return jsonSuccess(c, medications)
}

// Create adds a medication record with its schedules.
func (h *MedicationHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body medicationBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if msg, ok := body.validate(); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	medication := body.toModel(user.ID)
	if err := h.db.CreateMedication(c.Context(), medication); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create medication")
	}

	return jsonSuccess(c, medication)
}

// Update replaces one of the authenticated patient's medications, schedules
// included.
func (h *MedicationHandler) Update(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	var body medicationBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if msg, ok := body.validate(); !ok {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	medication := body.toModel(user.ID)
	medication.ID = id
	if err := h.db.UpdateMedication(c.Context(), medication); err != nil {
		if errors.Is(err, db.ErrMedicationNotFound) {
			return jsonError(c, fiber.StatusNotFound, "medication not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update medication")
	}

	return jsonSuccess(c, medication)
}

// Delete removes one of the authenticated patient's medications.
func (h *MedicationHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	if err := h.db.DeleteMedication(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, db.ErrMedicationNotFound) {
			return jsonError(c, fiber.StatusNotFound, "medication not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete medication")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
