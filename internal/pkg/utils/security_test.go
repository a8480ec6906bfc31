package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyHMACSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"message":"#auth 12345678","senderPhoneNumber":"+15551234567"}`)
	digest := ComputeHMACSHA256Hex(secret, body)

	t.Run("bare hex digest", func(t *testing.T) {
		assert.True(t, VerifyHMACSignature(secret, body, digest))
	})

	t.Run("prefixed digest", func(t *testing.T) {
		assert.True(t, VerifyHMACSignature(secret, body, "sha256="+digest))
	})

	t.Run("one byte of the body altered", func(t *testing.T) {
		altered := append([]byte(nil), body...)
		altered[2] = 'M'
		assert.False(t, VerifyHMACSignature(secret, altered, digest))
	})

	t.Run("wrong secret", func(t *testing.T) {
		assert.False(t, VerifyHMACSignature("other", body, digest))
	})

	t.Run("not hex", func(t *testing.T) {
		assert.False(t, VerifyHMACSignature(secret, body, "sha256=zzzz"))
	})

	t.Run("empty signature", func(t *testing.T) {
		assert.False(t, VerifyHMACSignature(secret, body, ""))
	})
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare("abc", "abc"))
	assert.False(t, SecureCompare("abc", "abd"))
	assert.False(t, SecureCompare("abc", "abcd"))
	assert.False(t, SecureCompare("", "abc"))
}
