package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthCommand(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode int
		wantOK   bool
	}{
		{"plain command", "#auth 12345678", 12345678, true},
		{"uppercase prefix", "#AUTH 87654321", 87654321, true},
		{"several spaces", "#auth    11112222", 11112222, true},
		{"trailing text", "#auth 12345678 please link me", 12345678, true},
		{"trailing punctuation", "#auth 12345678!", 12345678, true},
		{"nine digits", "#auth 123456789", 0, false},
		{"seven digits", "#auth 1234567", 0, false},
		{"missing space", "#auth12345678", 0, false},
		{"no prefix", "12345678", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := ParseAuthCommand(tt.message)
			assert.Equal(t, tt.wantOK, ok, "match result for %q", tt.message)
			assert.Equal(t, tt.wantCode, code, "parsed code for %q", tt.message)
		})
	}
}

func TestIsAuthMessage(t *testing.T) {
	assert.True(t, IsAuthMessage("#auth 12345678", ""))
	assert.True(t, IsAuthMessage("  #Auth 12345678", ""))
	assert.True(t, IsAuthMessage("12345678", "auth"))
	assert.False(t, IsAuthMessage("hello there", ""))
	assert.False(t, IsAuthMessage("hello #auth 12345678", "text"))
}

func TestNormalizeAuthMessage(t *testing.T) {
	t.Run("adds prefix for auth typed message", func(t *testing.T) {
		assert.Equal(t, "#auth 12345678", NormalizeAuthMessage(" 12345678 ", "auth"))
	})

	t.Run("keeps existing prefix", func(t *testing.T) {
		assert.Equal(t, "#AUTH 12345678", NormalizeAuthMessage("#AUTH 12345678", "auth"))
	})

	t.Run("ignores other types", func(t *testing.T) {
		assert.Equal(t, "12345678", NormalizeAuthMessage("12345678", "text"))
	})
}
