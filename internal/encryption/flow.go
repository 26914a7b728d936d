package encryption

import "fmt"

const (
	// SuperShift is the Caesar shift applied first by the super pipeline
	SuperShift = 5
	// SuperKey is the Vigenère key used by the super pipeline
	SuperKey = "key"
)

// SuperEncode chains Caesar, Symbol, Vigenère, Reverse and Base64
func SuperEncode(message string) (string, error) {
	encoded := Caesar(message, SuperShift)
	encoded = Symbol(encoded)
	encoded, err := Vigenere(encoded, SuperKey, false)
	if err != nil {
		return "", fmt.Errorf("super encode: %w", err)
	}
	encoded = Reverse(encoded)
	return Base64Encode(encoded)
}

// SuperDecode undoes SuperEncode step by step in reverse order
func SuperDecode(text string) (string, error) {
	decoded, err := Base64Decode(text)
	if err != nil {
		return "", err
	}
	decoded = Reverse(decoded)
	decoded, err = Vigenere(decoded, SuperKey, true)
	if err != nil {
		return "", fmt.Errorf("super decode: %w", err)
	}
	decoded = Symbol(decoded)
	return Caesar(decoded, -SuperShift), nil
}

// SuperHash is the hash mode of the super pipeline
func SuperHash(message string) (string, error) {
	return SHA256(message)
}
