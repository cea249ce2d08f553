package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

var randReader io.Reader = rand.Reader

// GenerateGameID returns 16 random bytes hex encoded
func GenerateGameID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := io.ReadFull(randReader, bytes); err != nil {
		return "", fmt.Errorf("failed to generate game ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
