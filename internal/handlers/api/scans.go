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

// ScanHandler handles imaging records via JSON API.
type ScanHandler struct {
	db *db.DB
}

// NewScanHandler creates a new API scan handler.
func NewScanHandler(database *db.DB) *ScanHandler {
	return &ScanHandler{db: database}
}

// List returns all of the authenticated patient's scans.
func (h *ScanHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	scans, err := h.db.ListScans(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch scans")
	}
	return jsonSuccess(c, scans)
}

// Create adds an imaging record.
func (h *ScanHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		Title    string    `json:"title"`
		ScanType string    `json:"scan_type"`
		ScanDate time.Time `json:"scan_date"`
		ImageURL string    `json:"image_url"`
		Notes    string    `json:"notes"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Title == "" {
		return jsonError(c, fiber.StatusBadRequest, "title is required")
	}
	if valid, msg := validation.ValidateFileURL(body.ImageURL); !valid {
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	scan := &models.Scan{
		UserID:   user.ID,
		Title:    body.Title,
		ScanType: body.ScanType,
		ScanDate: body.ScanDate,
		ImageURL: body.ImageURL,
		Notes:    body.Notes,
	}
	if err := h.db.CreateScan(c.Context(), scan); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create scan")
	}

	return jsonSuccess(c, scan)
}

// Delete removes one of the authenticated patient's scans.
func (h *ScanHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid scan id")
	}

	if err := h.db.DeleteScan(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, db.ErrScanNotFound) {
			return jsonError(c, fiber.StatusNotFound, "scan not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete scan")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
