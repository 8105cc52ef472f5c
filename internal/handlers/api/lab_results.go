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

// LabResultHandler handles lab result records via JSON API.
type LabResultHandler struct {
	db *db.DB
}

// NewLabResultHandler creates a new API lab result handler.
func NewLabResultHandler(database *db.DB) *LabResultHandler {
	return &LabResultHandler{db: database}
}

// List returns all of the authenticated patient's lab results.
func (h *LabResultHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	results, err := h.db.ListLabResults(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch lab results")
	}
	return jsonSuccess(c, results)
}

// Create adds a lab result record.
func (h *LabResultHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		Title    string    `json:"title"`
		TestType string    `json:"test_type"`
		TestDate time.Time `json:"test_date"`
		FileURL  string    `json:"file_url"`
		Notes    string    `json:"notes"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Title == "" {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}
	if valid, msg := validation.ValidateFileURL(body.FileURL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	result := &models.LabResult{
		UserID:   user.ID,
		Title:    body.Title,
		TestType: body.TestType,
		TestDate: body.TestDate,
		FileURL:  body.FileURL,
		Notes:    body.Notes,
	}
	if err := h.db.CreateLabResult(c.Context(), result); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create lab result")
	}

	return jsonSuccess(c, result)
}

// Delete removes one of the authenticated patient's lab results.
func (h *LabResultHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid lab result id")
	}

	if err := h.db.DeleteLabResult(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, db.ErrLabResultNotFound) {
			return jsonError(c, fiber.StatusNotFound, "lab result not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete lab result")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
