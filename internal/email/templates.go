package email

import (
	"fmt"
	"html"

	"healthshare/internal/config"
	"healthshare/internal/models"
)

const expiryFormat = "January 2, 2006 at 3:04 PM MST"

// Templates provides email template generation.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in a consistent HTML email template.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0d9488; color: white; padding: 20px; text-align: center; border-radius: 8px 8px 0 0; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { background: #f9fafb; padding: 20px; border: 1px solid #e5e7eb; }
        .footer { background: #f3f4f6; padding: 15px; text-align: center; font-size: 12px; color: #6b7280; border-radius: 0 0 8px 8px; border: 1px solid #e5e7eb; border-top: none; }
        .button { display: inline-block; background: #0d9488; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; margin: 10px 0; }
        .info-box { background: white; border: 1px solid #e5e7eb; border-radius: 6px; padding: 15px; margin: 15px 0; }
        .label { font-weight: 600; color: #374151; }
        .warning { color: #d97706; }
        code { background: #e5e7eb; padding: 2px 6px; border-radius: 4px; font-family: monospace; }
    </style>
</head>
<body>
    <div class="header">
        <h1>%s</h1>
    </div>
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>This email was sent by %s</p>
        <p><a href="%s">%s</a></p>
    </div>
</body>
</html>`, html.EscapeString(title), html.EscapeString(t.cfg.SiteTitle), content, html.EscapeString(t.cfg.SiteTitle), t.cfg.BaseURL, t.cfg.BaseURL)
}

// ShareLinkCreated generates the email sent to a patient when a share link is
// issued on their records.
func (t *Templates) ShareLinkCreated(link *models.ShareLink, owner *models.User) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] A share link for your records was created", t.cfg.SiteTitle)

	shareURL := fmt.Sprintf("%s/share/%s", t.cfg.BaseURL, link.Token)
	expires := link.ExpiresAt.Format(expiryFormat)

	content := fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>A share link for your health records was just created. Anyone with
        this link can view a read-only copy of your records until it expires
        or you revoke it.</p>

        <div class="info-box">
            <p><span class="label">Link:</span> <a href="%s">%s</a></p>
            <p><span class="label">Expires:</span> %s</p>
        </div>

        <p class="warning">If you did not create this link, revoke it now from your dashboard.</p>

        <p style="text-align: center;">
            <a href="%s/manage" class="button">Manage Share Links</a>
        </p>
    `,
		html.EscapeString(owner.Name),
		shareURL,
		shareURL,
		html.EscapeString(expires),
		t.cfg.BaseURL,
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`Hi %s,

A share link for your health records was just created.

Link: %s
Expires: %s

If you did not create this link, revoke it now: %s/manage

--
%s
%s`,
		owner.Name,
		shareURL,
		expires,
		t.cfg.BaseURL,
		t.cfg.SiteTitle,
		t.cfg.BaseURL,
	)

	return
}

// ShareLinkRevoked generates the email sent to a patient when one of their
// share links is revoked.
func (t *Templates) ShareLinkRevoked(link *models.ShareLink, owner *models.User) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] A share link for your records was revoked", t.cfg.SiteTitle)

	created := link.CreatedAt.Format(expiryFormat)

	content := fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>A share link for your health records was revoked. It can no longer
        be used to view your records, and revocation is permanent.</p>

        <div class="info-box">
            <p><span class="label">Created:</span> %s</p>
            <p><span class="label">Times viewed:</span> %d</p>
        </div>

        <p style="text-align: center;">
            <a href="%s/manage" class="button">Manage Share Links</a>
        </p>
    `,
		html.EscapeString(owner.Name),
		html.EscapeString(created),
		link.AccessCount,
		t.cfg.BaseURL,
	)

	htmlBody = t.baseHTML(subject, content)

	textBody = fmt.Sprintf(`Hi %s,

A share link for your health records was revoked. It can no longer be used.

Created: %s
Times viewed: %d

Manage your links: %s/manage

--
%s
%s`,
		owner.Name,
		created,
		link.AccessCount,
		t.cfg.BaseURL,
		t.cfg.SiteTitle,
		t.cfg.BaseURL,
	)

	return
}
