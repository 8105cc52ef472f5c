package distribution

import (
	"net/url"
	"strings"
	"testing"
)

func TestShareURL(t *testing.T) {
	b := NewBuilder("https://records.example.com/", "https://api.qrserver.com/v1/create-qr-code/")

	got := b.ShareURL("abc-DEF_123")
	want := "https://records.example.com/share/abc-DEF_123"
	if got != want {
		t.Errorf("ShareURL() = %q, want %q", got, want)
	}
}

func TestQRURLEncodesShareURL(t *testing.T) {
	b := NewBuilder("https://records.example.com", "https://api.qrserver.com/v1/create-qr-code/")

	raw := b.QRURL("tok123")
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("QRURL() produced unparseable URL %q: %v", raw, err)
	}
	if got := u.Query().Get("data"); got != "https://records.example.com/share/tok123" {
		t.Errorf("data param = %q", got)
	}
	if got := u.Query().Get("size"); got != "200x200" {
		t.Errorf("size param = %q", got)
	}
}

func TestQRURLAppendsToExistingQuery(t *testing.T) {
	b := NewBuilder("https://records.example.com", "https://qr.internal/render?format=png")

	raw := b.QRURL("tok123")
	if !strings.HasPrefix(raw, "https://qr.internal/render?format=png&") {
		t.Errorf("QRURL() = %q, want existing query preserved", raw)
	}
}
