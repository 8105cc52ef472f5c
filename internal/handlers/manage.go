package handlers

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"healthshare/internal/config"
	"healthshare/internal/distribution"
	"healthshare/internal/models"
	"healthshare/internal/sharing"
)

// ManageHandler renders the authenticated dashboard pages.
type ManageHandler struct {
	svc  *sharing.Service
	dist *distribution.Builder
	cfg  *config.Config
}

// NewManageHandler creates a new manage handler.
func NewManageHandler(svc *sharing.Service, dist *distribution.Builder, cfg *config.Config) *ManageHandler {
	return &ManageHandler{svc: svc, dist: dist, cfg: cfg}
}

// manageRow is one share link row on the manage page.
type manageRow struct {
	Link     models.ShareLink
	ShareURL string
	QRURL    string
	Usable   bool
}

// Home handles GET /, the landing page.
func (h *ManageHandler) Home(c fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title":      h.cfg.SiteTitle,
		"SiteFooter": h.cfg.SiteFooter,
		"User":       currentUser(c),
	}, "layouts/main")
}

// SharePanel handles GET /manage, the share link management page. All of the
// owner's links are shown, expired and revoked ones included.
func (h *ManageHandler) SharePanel(c fiber.Ctx) error {
	user := currentUser(c)

	links, err := h.svc.List(c.Context(), user.ID, true)
	if err != nil {
		return err
	}

	now := time.Now()
	rows := make([]manageRow, 0, len(links))
	for _, link := range links {
		rows = append(rows, manageRow{
			Link:     link,
			ShareURL: h.dist.ShareURL(link.Token),
			QRURL:    h.dist.QRURL(link.Token),
			Usable:   link.Usable(now),
		})
	}

	return c.Render("manage", fiber.Map{
		"Title":      h.cfg.SiteTitle,
		"SiteFooter": h.cfg.SiteFooter,
		"User":       user,
		"Rows":       rows,
	}, "layouts/main")
}
