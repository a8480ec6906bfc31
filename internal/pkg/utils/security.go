package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"phonelink-service/internal/pkg/constvars"
	"strings"
)

func ComputeHMACSHA256Hex(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMACSignature checks a hex digest, optionally prefixed with "sha256=".
func VerifyHMACSignature(secret string, body []byte, signature string) bool {
	provided := strings.TrimPrefix(strings.TrimSpace(signature), constvars.SignatureSHA256Prefix)
	providedBytes, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	expected, _ := hex.DecodeString(ComputeHMACSHA256Hex(secret, body))
	return hmac.Equal(providedBytes, expected)
}

func SecureCompare(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
