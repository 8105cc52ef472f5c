package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"healthshare/internal/config"
	"healthshare/internal/db"
	"healthshare/internal/distribution"
	"healthshare/internal/email"
	"healthshare/internal/handlers"
	"healthshare/internal/handlers/api"
	"healthshare/internal/middleware"
	"healthshare/internal/sharing"
)

// RegisterRoutes registers all application routes.
func RegisterRoutes(ctx context.Context, s *Server, database *db.DB, policy *config.Policy, notifier *email.Notifier) error {
	authMiddleware := middleware.NewAuthMiddleware(s.Sessions, database)

	shareService := sharing.NewService(database, database, s.Cfg.Timezone(), s.Cfg.ShareLiveRecords)
	dist := distribution.NewBuilder(s.Cfg.BaseURL, s.Cfg.QRServiceURL)

	// Handlers
	manageHandler := handlers.NewManageHandler(shareService, dist, s.Cfg)
	sharePageHandler := handlers.NewSharePageHandler(shareService, s.Cfg, policy)
	probeHandler := handlers.NewProbeHandler(database)

	profileHandler := api.NewProfileHandler(database)
	conditionHandler := api.NewConditionHandler(database)
	medicationHandler := api.NewMedicationHandler(database)
	scanHandler := api.NewScanHandler(database)
	labResultHandler := api.NewLabResultHandler(database)
	shareLinkHandler := api.NewShareLinkHandler(shareService, database, dist, notifier)
	redeemHandler := api.NewRedeemHandler(shareService)

	// Auth routes - OIDC is always required for patient access
	if s.Cfg.OIDCIssuer == "" {
		log.Fatal("OIDC_ISSUER is required. All patients must be authenticated.")
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, database)
	if err != nil {
		return err
	}

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)
	s.App.Get("/login", authHandler.Login)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Dashboard pages - require authentication
	s.App.Get("/", authMiddleware.RequireAuth, manageHandler.Home)
	s.App.Get("/manage", authMiddleware.RequireAuth, manageHandler.SharePanel)

	// Public share page - bare token is the only credential
	s.App.Get("/share/:token", sharePageHandler.Show)

	// Public JSON redemption - must be registered before the authenticated
	// /api group so the group's auth middleware never sees it
	s.App.Get("/api/share/:token", redeemHandler.Redeem)

	// JSON API - record management, owner-scoped
	apiGroup := s.App.Group("/api", authMiddleware.RequireAuthAPI)

	apiGroup.Get("/profile", profileHandler.Get)
	apiGroup.Put("/profile", profileHandler.Upsert)

	apiGroup.Get("/conditions", conditionHandler.List)
	apiGroup.Post("/conditions", conditionHandler.Create)
	apiGroup.Put("/conditions/:id", conditionHandler.Update)
	apiGroup.Delete("/conditions/:id", conditionHandler.Delete)

	apiGroup.Get("/medications", medicationHandler.List)
	apiGroup.Post("/medications", medicationHandler.Create)
	apiGroup.Put("/medications/:id", medicationHandler.Update)
	apiGroup.Delete("/medications/:id", medicationHandler.Delete)

	apiGroup.Get("/scans", scanHandler.List)
	apiGroup.Post("/scans", scanHandler.Create)
	apiGroup.Delete("/scans/:id", scanHandler.Delete)

	apiGroup.Get("/lab-results", labResultHandler.List)
	apiGroup.Post("/lab-results", labResultHandler.Create)
	apiGroup.Delete("/lab-results/:id", labResultHandler.Delete)

	apiGroup.Get("/share-links", shareLinkHandler.List)
	apiGroup.Post("/share-links", shareLinkHandler.Create)
	apiGroup.Post("/share-links/:id/revoke", shareLinkHandler.Revoke)
	apiGroup.Delete("/share-links/:id", shareLinkHandler.Delete)

	return nil
}
