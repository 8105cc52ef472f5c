package api

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v3"

	"healthshare/internal/db"
	"healthshare/internal/models"
)

// ProfileHandler handles the patient profile via JSON API.
type ProfileHandler struct {
	db *db.DB
}

// NewProfileHandler creates a new API profile handler.
func NewProfileHandler(database *db.DB) *ProfileHandler {
	return &ProfileHandler{db: database}
}

// Get returns the authenticated patient's profile, or null if not yet filled in.
func (h *ProfileHandler) Get(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	profile, err := h.db.GetProfile(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}
	return jsonSuccess(c, profile)
}

// Upsert creates or replaces the authenticated patient's profile.
func (h *ProfileHandler) Upsert(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		FullName         string                   `json:"full_name"`
		DateOfBirth      *time.Time               `json:"date_of_birth"`
		BloodType        string                   `json:"blood_type"`
		Allergies        []string                 `json:"allergies"`
		EmergencyContact *models.EmergencyContact `json:"emergency_contact"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.FullName == "" {
		return jsonError(c, fiber.StatusBadRequest, "full_name is required")
	}

	profile := &models.PatientProfile{
		UserID:           user.ID,
		FullName:         body.FullName,
		DateOfBirth:      body.DateOfBirth,
		BloodType:        body.BloodType,
		Allergies:        body.Allergies,
		EmergencyContact: body.EmergencyContact,
	}
	if err := h.db.UpsertProfile(c.Context(), profile); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to save profile")
	}

	return jsonSuccess(c, profile)
}
