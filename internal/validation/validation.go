package validation

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"healthshare/internal/models"
)

// TokenPattern defines the shape of a share token: unpadded URL-safe base64.
var TokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{20,64}$`)

// ValidateToken checks that a redemption token has the expected shape before
// it is used in a lookup. A failed check is reported to callers exactly like
// an unknown token.
func ValidateToken(token string) bool {
	return TokenPattern.MatchString(token)
}

// ValidateConditionStatus checks a condition status value.
func ValidateConditionStatus(status string) bool {
	switch status {
	case models.ConditionActive, models.ConditionResolved, models.ConditionChronic:
		return true
	}
	return false
}

// ValidateMedicationStatus checks a medication status value.
func ValidateMedicationStatus(status string) bool {
	switch status {
	case models.MedicationActive, models.MedicationCompleted, models.MedicationDiscontinued:
		return true
	}
	return false
}

// ValidateScheduleTime checks an HH:mm 24-hour time string.
func ValidateScheduleTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidateFileURL checks that a scan or lab-result file URL is http(s) with a
// host. This keeps javascript:, data: and friends out of the stored records,
// which are later rendered on the public share page.
func ValidateFileURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "file URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
