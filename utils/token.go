package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateInviteCode returns a random URL-safe code of the given length.
func GenerateInviteCode(length int) string {
	b := make([]byte, (length*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand failure means the platform is broken
	}
	return base64.RawURLEncoding.EncodeToString(b)[:length]
}
