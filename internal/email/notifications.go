package email

import (
	"context"
	"log"

	"github.com/google/uuid"

	"healthshare/internal/config"
	"healthshare/internal/models"
)

// OwnerGetter resolves a share link owner to a user record.
type OwnerGetter interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// Notifier sends share link lifecycle emails to the owning patient.
type Notifier struct {
	service   *Service
	templates *Templates
	cfg       *config.Config
	policy    *config.Policy
	db        OwnerGetter
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, policy *config.Policy, db OwnerGetter) *Notifier {
	if policy == nil {
		policy = config.DefaultPolicy()
	}
	return &Notifier{
		service:   NewService(cfg),
		templates: NewTemplates(cfg),
		cfg:       cfg,
		policy:    policy,
		db:        db,
	}
}

// NotifyLinkCreated emails the owner that a share link was issued, with its
// expiry, so an unexpected link is noticed early.
func (n *Notifier) NotifyLinkCreated(ctx context.Context, link *models.ShareLink) {
	if !n.service.IsEnabled() || !n.policy.Notifications.OnCreate {
		return
	}

	owner, err := n.db.GetUserByID(ctx, link.OwnerUserID)
	if err != nil {
		log.Printf("Failed to get share link owner: %v", err)
		return
	}
	if owner.Email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.ShareLinkCreated(link, owner)
	n.service.SendAsync([]string{owner.Email}, subject, htmlBody, textBody)
}

// NotifyLinkRevoked emails the owner that a share link was revoked.
func (n *Notifier) NotifyLinkRevoked(ctx context.Context, link *models.ShareLink) {
	if !n.service.IsEnabled() || !n.policy.Notifications.OnRevoke {
		return
	}

	owner, err := n.db.GetUserByID(ctx, link.OwnerUserID)
	if err != nil {
		log.Printf("Failed to get share link owner: %v", err)
		return
	}
	if owner.Email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.ShareLinkRevoked(link, owner)
	n.service.SendAsync([]string{owner.Email}, subject, htmlBody, textBody)
}
