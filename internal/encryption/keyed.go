package encryption

import (
	"fmt"
	"strings"
	"unicode/utf8"

	apperrors "github.com/cipherium-go/internal/errors"
)

const (
	// MatrixKeyLength is the number of key characters consumed by MatrixMixer
	MatrixKeyLength = 9
	// KeyStretchRounds is the number of times KeyStretchHash rehashes the key
	KeyStretchRounds = 5

	matrixDim = 3
)

// ValidateStreamKey checks that key has at least as many characters as message
func ValidateStreamKey(message, key string) error {
	if utf8.RuneCountInString(key) < utf8.RuneCountInString(message) {
		return apperrors.NewKeyTooShort("key must be as long as message or longer")
	}
	return nil
}

// Keystream expands key into the 64-character hex keystream used by StreamCipherX
func Keystream(key string) string {
	return sha256Hex(key)
}

// StreamCipherX XORs every code point of message with the keystream derived
// from key. Applying it twice with the same key restores the message.
func StreamCipherX(message, key string) (string, error) {
	if err := ValidateStreamKey(message, key); err != nil {
		return "", err
	}

	ks := Keystream(key)
	var b strings.Builder
	b.Grow(len(message))
	i := 0
	for _, r := range message {
		b.WriteRune(r ^ rune(ks[i%len(ks)]))
		i++
	}
	return b.String(), nil
}

// KeyStretchHash hashes key KeyStretchRounds times, then hashes the stretched
// key concatenated with message.
func KeyStretchHash(message, key string) string {
	stretched := key
	for i := 0; i < KeyStretchRounds; i++ {
		stretched = sha256Hex(stretched)
	}
	return sha256Hex(stretched + message)
}

// DoubleHashChain returns SHA256(SHA256(key+message) + key)
func DoubleHashChain(message, key string) string {
	first := sha256Hex(key + message)
	return sha256Hex(first + key)
}

// ValidateMatrixKey checks that key is long enough to fill the mixing matrix
func ValidateMatrixKey(key string) error {
	if n := utf8.RuneCountInString(key); n < MatrixKeyLength {
		return apperrors.NewInvalidKey(fmt.Sprintf("key must be %d characters or more, got %d", MatrixKeyLength, n))
	}
	return nil
}

// mixingMatrix builds the 3x3 matrix from the first nine key characters,
// each entry reduced into [1,5].
func mixingMatrix(key string) [matrixDim][matrixDim]int {
	var m [matrixDim][matrixDim]int
	runes := []rune(key)
	for i := 0; i < MatrixKeyLength; i++ {
		m[i/matrixDim][i%matrixDim] = int(runes[i])%5 + 1
	}
	return m
}

// MatrixMixer left-multiplies each 3-character block of message by a
// key-derived matrix, reducing every component mod 256. The message is padded
// with NUL to a multiple of three. The matrix is not guaranteed to be
// invertible mod 256, so no inverse is offered.
func MatrixMixer(message, key string) (string, error) {
	if err := ValidateMatrixKey(key); err != nil {
		return "", err
	}

	m := mixingMatrix(key)
	runes := []rune(message)
	for len(runes)%matrixDim != 0 {
		runes = append(runes, 0)
	}

	var b strings.Builder
	b.Grow(len(runes) * 2)
	for blk := 0; blk < len(runes); blk += matrixDim {
		v := runes[blk : blk+matrixDim]
		for row := 0; row < matrixDim; row++ {
			sum := 0
			for col := 0; col < matrixDim; col++ {
				sum += m[row][col] * int(v[col])
			}
			b.WriteRune(rune(sum % 256))
		}
	}
	return b.String(), nil
}
