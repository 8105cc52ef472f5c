package api

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"healthshare/internal/db"
	"healthshare/internal/distribution"
	"healthshare/internal/email"
	"healthshare/internal/models"
	"healthshare/internal/sharing"
)

// ShareLinkHandler handles share link issuance and management via JSON API.
// All routes here are owner-scoped; the public redemption route lives in
// RedeemHandler.
type ShareLinkHandler struct {
	svc      *sharing.Service
	db       *db.DB
	dist     *distribution.Builder
	notifier *email.Notifier
}

// NewShareLinkHandler creates a new API share link handler.
func NewShareLinkHandler(svc *sharing.Service, database *db.DB, dist *distribution.Builder, notifier *email.Notifier) *ShareLinkHandler {
	return &ShareLinkHandler{svc: svc, db: database, dist: dist, notifier: notifier}
}

// shareLinkResponse is the API shape of a share link, with the derived
// distribution URLs attached. Snapshots are never included.
type shareLinkResponse struct {
	ID             uuid.UUID  `json:"id"`
	Token          string     `json:"token"`
	ShareURL       string     `json:"share_url"`
	QRURL          string     `json:"qr_url"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      time.Time  `json:"expires_at"`
	Active         bool       `json:"active"`
	Usable         bool       `json:"usable"`
	AccessCount    int        `json:"access_count"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
}

func (h *ShareLinkHandler) toResponse(link *models.ShareLink, now time.Time) shareLinkResponse {
	return shareLinkResponse{
		ID:             link.ID,
		Token:          link.Token,
		ShareURL:       h.dist.ShareURL(link.Token),
		QRURL:          h.dist.QRURL(link.Token),
		CreatedAt:      link.CreatedAt,
		ExpiresAt:      link.ExpiresAt,
		Active:         link.Active,
		Usable:         link.Usable(now),
		AccessCount:    link.AccessCount,
		LastAccessedAt: link.LastAccessedAt,
	}
}

// Create issues a new share link over a snapshot of the caller's records.
func (h *ShareLinkHandler) Create(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	var body struct {
		TTLDays int `json:"ttl_days"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	link, err := h.svc.Create(c.Context(), user.ID, body.TTLDays)
	if err != nil {
		switch {
		case errors.Is(err, sharing.ErrInvalidTTL):
			return jsonError(c, fiber.StatusBadRequest, "ttl_days must be 1, 7, 30, or 90")
		case errors.Is(err, sharing.ErrSnapshotUnavailable):
			return jsonError(c, fiber.StatusServiceUnavailable, "records are temporarily unavailable, no link was created")
		default:
			return jsonError(c, fiber.StatusInternalServerError, "failed to create share link")
		}
	}

	if h.notifier != nil {
		h.notifier.NotifyLinkCreated(c.Context(), link)
	}

	return jsonSuccess(c, h.toResponse(link, time.Now()))
}

// List returns the caller's share links, newest first. Revoked and expired
// links are included only with ?include_expired=true.
func (h *ShareLinkHandler) List(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	includeExpired := c.Query("include_expired") == "true"
	links, err := h.svc.List(c.Context(), user.ID, includeExpired)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch share links")
	}

	now := time.Now()
	out := make([]shareLinkResponse, 0, len(links))
	for i := range links {
		out = append(out, h.toResponse(&links[i], now))
	}
	return jsonSuccess(c, out)
}

// Revoke permanently deactivates one of the caller's share links. Revoking a
// link that is already revoked or expired succeeds.
func (h *ShareLinkHandler) Revoke(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid share link id")
	}

	if err := h.svc.Revoke(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, sharing.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to revoke share link")
	}

	link, err := h.db.GetShareLinkByID(c.Context(), user.ID, id)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to fetch share link")
	}

	if h.notifier != nil {
		h.notifier.NotifyLinkRevoked(c.Context(), link)
	}

	return jsonSuccess(c, h.toResponse(link, time.Now()))
}

// Delete hard-removes one of the caller's share links.
func (h *ShareLinkHandler) Delete(c fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid share link id")
	}

	if err := h.svc.Delete(c.Context(), user.ID, id); err != nil {
		if errors.Is(err, sharing.ErrLinkNotFound) {
			return jsonError(c, fiber.StatusNotFound, "share link not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to delete share link")
	}

	return jsonSuccess(c, fiber.Map{"deleted": id})
}
