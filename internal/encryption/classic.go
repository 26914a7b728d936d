package encryption

import (
	"strings"

	apperrors "github.com/cipherium-go/internal/errors"
)

const alphabetSize = 26

// symbolPairs holds the letter/symbol substitutions; the table is symmetric
var symbolPairs = map[rune]rune{}

func init() {
	for _, p := range [][2]rune{
		{'i', '!'}, {'l', '1'}, {'s', '$'}, {'o', '0'}, {'a', '@'},
		{'e', '3'}, {'b', '6'}, {'g', '9'}, {'t', '+'}, {'p', '%'},
		{'c', '('}, {'d', ')'}, {'f', '#'}, {'m', '~'}, {'n', '&'},
		{'r', '^'}, {'u', '*'}, {'y', '€'}, {'z', '7'},
	} {
		symbolPairs[p[0]] = p[1]
		symbolPairs[p[1]] = p[0]
	}
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

// IsLetter reports whether r is an ASCII letter
func IsLetter(r rune) bool { return isUpper(r) || isLower(r) }

// shiftLetter shifts an ASCII letter within its case. amount is applied with
// Go's truncated modulo, so a negative amount may leave the alphabet.
func shiftLetter(r rune, amount int) rune {
	switch {
	case isUpper(r):
		return rune((int(r-'A')+amount)%alphabetSize) + 'A'
	case isLower(r):
		return rune((int(r-'a')+amount)%alphabetSize) + 'a'
	}
	return r
}

// Caesar shifts every ASCII letter by amount, preserving case.
// A negative amount is normalised by adding 26 exactly once; shifts of -27 or
// less therefore still produce out-of-alphabet characters.
func Caesar(message string, amount int) string {
	if amount < 0 {
		amount += alphabetSize
	}
	if amount > 0 {
		amount %= alphabetSize
	}
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		b.WriteRune(shiftLetter(r, amount))
	}
	return b.String()
}

// Symbol swaps characters through the letter/symbol table. Uppercase letters
// have no symbol counterpart and pass through, which keeps Symbol an involution.
func Symbol(message string) string {
	var b strings.Builder
	b.Grow(len(message))
	for _, r := range message {
		if mapped, ok := symbolPairs[r]; ok {
			b.WriteRune(mapped)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Reverse reverses each space-delimited word in place. Only the literal space
// separates words.
func Reverse(message string) string {
	words := strings.Split(message, " ")
	for i, w := range words {
		runes := []rune(w)
		for l, r := 0, len(runes)-1; l < r; l, r = l+1, r-1 {
			runes[l], runes[r] = runes[r], runes[l]
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// ValidateVigenereKey checks that key is non-empty and made of ASCII letters
func ValidateVigenereKey(key string) error {
	if key == "" {
		return apperrors.NewInvalidKey("invalid key: key must not be empty")
	}
	for _, r := range key {
		if !IsLetter(r) {
			return apperrors.NewInvalidKey("invalid key: key must contain only letters")
		}
	}
	return nil
}

// Vigenere shifts each letter of message by the matching key letter (A=0).
// Only letters consume key material.
func Vigenere(message, key string, decrypt bool) (string, error) {
	if err := ValidateVigenereKey(key); err != nil {
		return "", err
	}

	shifts := make([]int, 0, len(key))
	for _, r := range strings.ToUpper(key) {
		shift := int(r - 'A')
		if decrypt {
			shift = alphabetSize - shift
		}
		shifts = append(shifts, shift)
	}

	var b strings.Builder
	b.Grow(len(message))
	j := 0
	for _, r := range message {
		if IsLetter(r) {
			r = shiftLetter(r, shifts[j%len(shifts)])
			j++
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}
