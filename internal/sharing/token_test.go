package sharing

import (
	"testing"

	"healthshare/internal/validation"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	// 32 bytes -> 43 chars of unpadded base64url.
	if len(token) != 43 {
		t.Errorf("token length = %d, want 43", len(token))
	}
	if !validation.ValidateToken(token) {
		t.Errorf("token %q does not match the expected URL-safe shape", token)
	}
}

func TestGenerateTokenUniqueness(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if _, dup := seen[token]; dup {
			t.Fatalf("duplicate token generated: %q", token)
		}
		seen[token] = struct{}{}
	}
}
