package handlers

import (
	"github.com/gofiber/fiber/v3"

	"healthshare/internal/config"
	"healthshare/internal/metrics"
	"healthshare/internal/sharing"
	"healthshare/internal/validation"
)

// SharePageHandler renders the public, read-only record view behind a share
// token. This is the only unauthenticated page that shows record data.
type SharePageHandler struct {
	svc    *sharing.Service
	cfg    *config.Config
	policy *config.Policy
}

// NewSharePageHandler creates a new share page handler.
func NewSharePageHandler(svc *sharing.Service, cfg *config.Config, policy *config.Policy) *SharePageHandler {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return &SharePageHandler{svc: svc, cfg: cfg, policy: policy}
}

// Show handles GET /share/:token. Unknown, revoked and expired tokens all
// render the same unavailable page so the response doesn't reveal whether a
// token ever existed.
func (h *SharePageHandler) Show(c fiber.Ctx) error {
	token := c.Params("token")
	if !validation.ValidateToken(token) {
		metrics.RecordRedemption(sharing.StatusNotFound.String())
		return h.renderUnavailable(c)
	}

	redemption, err := h.svc.Redeem(c.Context(), token)
	if err != nil {
		return err
	}
	metrics.RecordRedemption(redemption.Status.String())

	if redemption.Status != sharing.StatusOK {
		return h.renderUnavailable(c)
	}

	scans := redemption.Snapshot.Scans
	if h.policy.SharePage.HideScans {
		scans = nil
	}

	return c.Render("share", fiber.Map{
		"Title":        h.cfg.SiteTitle,
		"SiteFooter":   h.cfg.SiteFooter,
		"Disclaimer":   h.policy.SharePage.Disclaimer,
		"SupportEmail": h.policy.SharePage.SupportEmail,
		"CapturedAt":   redemption.Snapshot.CapturedAt,
		"ExpiresAt":    redemption.ExpiresAt,
		"Profile":      redemption.Snapshot.Profile,
		"Conditions":   redemption.Snapshot.Conditions,
		"Medications":  redemption.Snapshot.Medications,
		"Scans":        scans,
		"LabResults":   redemption.Snapshot.LabResults,
	}, "layouts/main")
}

func (h *SharePageHandler) renderUnavailable(c fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("share_unavailable", fiber.Map{
		"Title":      h.cfg.SiteTitle,
		"SiteFooter": h.cfg.SiteFooter,
	}, "layouts/main")
}
