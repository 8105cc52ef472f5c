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

// ConditionHandler handles condition records via JSON API.
type ConditionHandler struct {
	db *db.DB
}

// NewConditionHandler creates a new API condition handler.
func NewConditionHandler(database *db.DB) *ConditionHandler {
	return &ConditionHandler{db: database}
}

// List returns all of the authenticated patient's conditions.
func (h *ConditionHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	conditions, err := h.db.ListConditions(c.Context(), user.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch conditions")
	}
	return jsonSuccess(c, conditions)
}

// Create adds a condition record.
func (h *ConditionHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		Condition     string    `json:"condition"`
		DiagnosisDate time.Time `json:"diagnosis_date"`
		Description   string    `json:"description"`
		Status        string    `json:"status"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Condition == "" {
		return jsonError(c, fiber.StatusBadRequest, "condition is required")
	}
	if body.Status == "" {
		body.Status = models.ConditionActive
	}
	if !validation.ValidateConditionStatus(body.Status) {
		return jsonError(c, fiber.StatusBadRequest, "status must be active, resolved, or chronic")
	}

	condition := &models.Condition{
		UserID:        user.ID,
		Condition:     body.Condition,
		DiagnosisDate: body.DiagnosisDate,
		Description:   body.Description,
		Status:        body.Status,
	}
	if err := h.db.CreateCondition(c.Context(), condition); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to create condition")
	}

	return jsonSuccess(c, condition)
}

// Update modifies one of the authenticated patient's conditions.
func (h *ConditionHandler) Update(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid condition id")
	}

	var body struct {
		Condition     string    `json:"condition"`
		DiagnosisDate time.Time `json:"diagnosis_date"`
		Description   string    `json:"description"`
		Status        string    `json:"status"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	if body.Condition == "" {
		return jsonError(c, fiber.StatusBadRequest, "condition is required")
	}
	if !validation.ValidateConditionStatus(body.Status) {
		return jsonError(c, fiber.StatusBadRequest, "status must be active, resolved, or chronic")
	}

	condition := &models.Condition{
		ID:            id,
		UserID:        user.ID,
		Condition:     body.Condition,
		DiagnosisDate: body.DiagnosisDate,
		Description:   body.Description,
		Status:        body.Status,
	}
	if err := h.db.UpdateCondition(c.Context(), condition); err != nil {
		if errors.Is(err, db.ErrConditionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "condition not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to update condition")
	}

	return jsonSuccess(c, condition)
}

// Delete removes one of the authenticated patient's conditions.
func (h *ConditionHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid condition id")
	}

	if err := h.db.DeleteCondition(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, db.ErrConditionNotFound) {
			return jsonError(c, fiber.StatusNotFound, "condition not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete condition")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
