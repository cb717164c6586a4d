package sessions

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const idBytes = 16 // 128 bits

// NewID returns a hex encoded identifier read from crypto/rand.
func NewID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("[NewID] failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}
