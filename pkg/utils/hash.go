package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// PhoneRef returns a short, stable reference to a phone number for log lines,
// so raw numbers never reach the logs.
func PhoneRef(phone string) string {
	return "phone:" + HashString(phone)[:12]
}
