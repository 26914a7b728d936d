package config

import (
	"fmt"
	"strings"
)

// ParseLogLevel normalises a log level name
func ParseLogLevel(raw string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "debug", "info", "warn", "error":
		return s, nil
	case "warning":
		return "warn", nil
	case "":
		return "warn", nil
	default:
		return "", fmt.Errorf("unsupported log level: %s", raw)
	}
}

// ParseOutputFormat normalises an output format name
func ParseOutputFormat(raw string) (string, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "text", "json", "yaml":
		return s, nil
	case "yml":
		return "yaml", nil
	case "":
		return "text", nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", raw)
	}
}
