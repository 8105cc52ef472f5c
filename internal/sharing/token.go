package sharing

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes is the entropy of a share token. 32 bytes is double the 128-bit
// floor for an unguessable bearer credential.
const tokenBytes = 32

// GenerateToken returns a new URL-safe opaque share token from the system
// CSPRNG. It fails only if the randomness source does, which is fatal for the
// caller.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("reading random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
