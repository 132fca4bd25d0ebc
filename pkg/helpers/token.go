package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// GenVerificationToken returns a hex-encoded random token. 32 bytes keeps the
// token unguessable (256 bits of entropy).
func GenVerificationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
