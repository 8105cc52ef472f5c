package email

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"healthshare/internal/config"
	"healthshare/internal/models"
)

func testTemplates() *Templates {
	return NewTemplates(&config.Config{
		SiteTitle: "HealthShare",
		BaseURL:   "https://records.example.com",
	})
}

func TestBaseHTML(t *testing.T) {
	tmpl := testTemplates()

	html := tmpl.baseHTML("Test Title", "<p>Test content</p>")

	checks := []string{
		"<!DOCTYPE html>",
		"<title>Test Title</title>",
		"HealthShare",
		"https://records.example.com",
		"<p>Test content</p>",
	}
	for _, check := range checks {
		if !strings.Contains(html, check) {
			t.Errorf("baseHTML missing %q", check)
		}
	}
}

func TestBaseHTMLEscapesSiteTitle(t *testing.T) {
	tmpl := NewTemplates(&config.Config{
		SiteTitle: "<script>alert('xss')</script>",
		BaseURL:   "https://records.example.com",
	})

	html := tmpl.baseHTML("Test", "Content")

	if strings.Contains(html, "<script>") {
		t.Error("baseHTML should escape HTML in site title")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("baseHTML should contain escaped script tag")
	}
}

func TestShareLinkCreated(t *testing.T) {
	tmpl := testTemplates()

	link := &models.ShareLink{
		ID:        uuid.New(),
		Token:     "tok-abc123",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		ExpiresAt: time.Date(2026, 3, 8, 23, 59, 59, 0, time.UTC),
	}
	owner := &models.User{Name: "Jane Doe", Email: "jane@example.com"}

	subject, htmlBody, textBody := tmpl.ShareLinkCreated(link, owner)

	if !strings.Contains(subject, "HealthShare") {
		t.Errorf("subject missing site title: %s", subject)
	}
	for _, body := range []string{htmlBody, textBody} {
		if !strings.Contains(body, "https://records.example.com/share/tok-abc123") {
			t.Error("body missing share URL")
		}
		if !strings.Contains(body, "Jane Doe") {
			t.Error("body missing owner name")
		}
		if !strings.Contains(body, "March 8, 2026") {
			t.Error("body missing formatted expiry")
		}
	}
}

func TestShareLinkRevoked(t *testing.T) {
	tmpl := testTemplates()

	link := &models.ShareLink{
		ID:          uuid.New(),
		Token:       "tok-abc123",
		CreatedAt:   time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		AccessCount: 4,
	}
	owner := &models.User{Name: "Jane Doe", Email: "jane@example.com"}

	subject, htmlBody, textBody := tmpl.ShareLinkRevoked(link, owner)

	if !strings.Contains(subject, "revoked") {
		t.Errorf("subject = %s", subject)
	}
	for _, body := range []string{htmlBody, textBody} {
		if !strings.Contains(body, "Jane Doe") {
			t.Error("body missing owner name")
		}
		if !strings.Contains(body, "4") {
			t.Error("body missing access count")
		}
	}
	// The dead token must not leak back out in revocation mail.
	if strings.Contains(htmlBody, "tok-abc123") || strings.Contains(textBody, "tok-abc123") {
		t.Error("revocation email should not include the token")
	}
}
