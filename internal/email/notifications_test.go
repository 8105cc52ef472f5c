package email

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"healthshare/internal/config"
	"healthshare/internal/models"
)

type stubOwnerGetter struct {
	user  *models.User
	calls int
}

func (s *stubOwnerGetter) GetUserByID(_ context.Context, _ uuid.UUID) (*models.User, error) {
	s.calls++
	return s.user, nil
}

func TestNewNotifier(t *testing.T) {
	cfg := &config.Config{SiteTitle: "Test", BaseURL: "https://test.example.com"}

	notifier := NewNotifier(cfg, nil, &stubOwnerGetter{})

	if notifier.service == nil {
		t.Error("Notifier service is nil")
	}
	if notifier.templates == nil {
		t.Error("Notifier templates is nil")
	}
	if notifier.policy == nil {
		t.Error("Notifier should fall back to the default policy")
	}
}

func TestNotifyLinkCreatedDisabled(t *testing.T) {
	// SMTP unconfigured: no owner lookup, no send, no panic.
	getter := &stubOwnerGetter{}
	notifier := NewNotifier(&config.Config{}, nil, getter)

	notifier.NotifyLinkCreated(context.Background(), &models.ShareLink{ID: uuid.New()})

	if getter.calls != 0 {
		t.Error("owner lookup should be skipped when email is disabled")
	}
}

func TestNotifyLinkRevokedPolicyOff(t *testing.T) {
	cfg := &config.Config{
		SMTPHost: "smtp.test.com",
		SMTPFrom: "noreply@test.com",
	}
	policy := &config.Policy{
		Notifications: config.NotificationPolicy{OnCreate: true, OnRevoke: false},
	}
	getter := &stubOwnerGetter{user: &models.User{Email: "jane@example.com"}}
	notifier := NewNotifier(cfg, policy, getter)

	notifier.NotifyLinkRevoked(context.Background(), &models.ShareLink{ID: uuid.New()})

	if getter.calls != 0 {
		t.Error("revoke notification should respect the policy toggle")
	}
}
