package api

import (
	"github.com/gofiber/fiber/v3"

	"healthshare/internal/metrics"
	"healthshare/internal/sharing"
	"healthshare/internal/validation"
)

// RedeemHandler handles public, unauthenticated share token redemption.
type RedeemHandler struct {
	svc *sharing.Service
}

// NewRedeemHandler creates a new API redeem handler.
func NewRedeemHandler(svc *sharing.Service) *RedeemHandler {
	return &RedeemHandler{svc: svc}
}

// Redeem handles GET /api/share/:token. Unknown, revoked and expired tokens
// all produce the same 404 body; the distinction is kept server-side for
// metrics only.
func (h *RedeemHandler) Redeem(c fiber.Ctx) error {
	token := c.Params("token")
	if !validation.ValidateToken(token) {
		metrics.RecordRedemption(sharing.StatusNotFound.String())
		return unavailable(c)
	}

	redemption, err := h.svc.Redeem(c.Context(), token)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "failed to resolve share link")
	}
	metrics.RecordRedemption(redemption.Status.String())

	if redemption.Status != sharing.StatusOK {
		return unavailable(c)
	}

	return jsonSuccess(c, fiber.Map{
		"captured_at":  redemption.Snapshot.CapturedAt,
		"expires_at":   redemption.ExpiresAt,
		"profile":      redemption.Snapshot.Profile,
		"conditions":   redemption.Snapshot.Conditions,
		"medications":  redemption.Snapshot.Medications,
		"scans":        redemption.Snapshot.Scans,
		"lab_results":  redemption.Snapshot.LabResults,
		"access_count": redemption.AccessCount,
	})
}

func unavailable(c fiber.Ctx) error {
	return jsonError(c, fiber.StatusNotFound, "this share link is invalid, expired, or has been revoked")
}
