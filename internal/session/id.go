package session

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateID returns a cryptographically random session token.
// 32 bytes = 256 bits of entropy.
func GenerateID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session: failed to generate id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
