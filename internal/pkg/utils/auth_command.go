package utils

import (
	"phonelink-service/internal/pkg/constvars"
	"regexp"
	"strconv"
	"strings"
)

var reAuthCommand = regexp.MustCompile(constvars.RegexAuthCommand)

// ParseAuthCommand extracts the 8 digit code from a "#auth <code>" message.
func ParseAuthCommand(message string) (int, bool) {
	matches := reAuthCommand.FindStringSubmatch(message)
	if len(matches) < 2 {
		return 0, false
	}
	code, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, false
	}
	return code, true
}

func IsAuthMessage(message, messageType string) bool {
	if messageType == constvars.WebhookMessageTypeAuth {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(message)), constvars.AuthCommandPrefix)
}

// NormalizeAuthMessage prefixes "#auth" for messages tagged as auth that omit it.
func NormalizeAuthMessage(message, messageType string) string {
	if messageType != constvars.WebhookMessageTypeAuth {
		return message
	}
	trimmed := strings.TrimSpace(message)
	if strings.HasPrefix(strings.ToLower(trimmed), constvars.AuthCommandPrefix) {
		return message
	}
	return constvars.AuthCommandPrefix + " " + trimmed
}
