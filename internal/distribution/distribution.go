// Package distribution builds the shareable artifacts for a link token: the
// public URL a recipient opens and a QR image URL rendered by an external
// service. The token itself is the only secret; neither artifact adds one.
package distribution

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultQRSize is the pixel edge of generated QR images.
const DefaultQRSize = 200

// Builder derives share and QR URLs from the deployment's base URL.
type Builder struct {
	baseURL      string
	qrServiceURL string
}

// NewBuilder creates a Builder. baseURL is the externally reachable origin of
// this deployment; qrServiceURL is the QR rendering endpoint.
func NewBuilder(baseURL, qrServiceURL string) *Builder {
	return &Builder{
		baseURL:      strings.TrimRight(baseURL, "/"),
		qrServiceURL: qrServiceURL,
	}
}

// ShareURL returns the public URL for a share token.
func (b *Builder) ShareURL(token string) string {
	return b.baseURL + "/share/" + url.PathEscape(token)
}

// QRURL returns an image URL that renders the share URL as a QR code.
func (b *Builder) QRURL(token string) string {
	size := strconv.Itoa(DefaultQRSize)
	q := url.Values{}
	q.Set("size", size+"x"+size)
	q.Set("data", b.ShareURL(token))

	sep := "?"
	if strings.Contains(b.qrServiceURL, "?") {
		sep = "&"
	}
	return b.qrServiceURL + sep + q.Encode()
}
