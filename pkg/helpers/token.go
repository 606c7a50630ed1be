package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// GenValidationToken generates the opaque single-use token embedded in the
// email verification link. 32 bytes of entropy, base64url encoded so it is
// safe to place in a query string.
func GenValidationToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
