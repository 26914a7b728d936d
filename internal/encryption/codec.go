package encryption

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/cipherium-go/internal/errors"
)

var base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)

// Base64Encode returns the padded standard Base64 form of message's UTF-8 bytes
func Base64Encode(message string) (string, error) {
	if message == "" {
		return "", apperrors.NewInvalidInput("input string is required for Base64 encoding")
	}
	return base64.StdEncoding.EncodeToString([]byte(message)), nil
}

// Base64Decode decodes standard Base64 text. Padding is optional.
func Base64Decode(text string) (string, error) {
	if text == "" {
		return "", apperrors.NewInvalidInput("input string is required for Base64 decoding")
	}
	if !base64Pattern.MatchString(text) {
		return "", apperrors.NewInvalidFormat("invalid Base64 input")
	}

	raw, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(text, "="))
	if err != nil {
		return "", apperrors.NewInvalidFormatWithCause("invalid Base64 input", err)
	}
	if !utf8.Valid(raw) {
		return "", apperrors.NewDecodeError("decoded bytes are not valid UTF-8")
	}
	return string(raw), nil
}

// SHA256 returns the lowercase hex SHA-256 digest of message
func SHA256(message string) (string, error) {
	if message == "" {
		return "", apperrors.NewInvalidInput("input string is required for SHA-256 hashing")
	}
	return sha256Hex(message), nil
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
