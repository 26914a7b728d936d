package encryption

import (
	stderrors "errors"
	"math"
	"strings"
	"testing"

	apperrors "github.com/cipherium-go/internal/errors"
)

// TestCaesar tests letter shifting and wraparound
func TestCaesar(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		amount  int
		want    string
	}{
		{"simple shift", "abc", 1, "bcd"},
		{"wraparound", "xyz", 3, "abc"},
		{"uppercase", "XYZ", 3, "ABC"},
		{"mixed with punctuation", "Hello, World!", 5, "Mjqqt, Btwqi!"},
		{"negative shift", "bcd", -1, "abc"},
		{"minus 26 is identity", "Hello", -26, "Hello"},
		{"large positive", "abc", 27, "bcd"},
		{"zero", "abc", 0, "abc"},
		{"non-ascii passthrough", "héllo €", 1, "iémmp €"},
		{"empty", "", 4, ""},
		// A single +26 leaves -27 at -1, which steps below the alphabet
		{"below -26 quirk", "b", -27, "a"},
		{"below -26 leaves alphabet", "a", -27, "`"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Caesar(tc.message, tc.amount); got != tc.want {
				t.Errorf("Caesar(%q, %d) = %q, want %q", tc.message, tc.amount, got, tc.want)
			}
		})
	}
}

// TestCaesarHugeShift tests that very large shifts reduce without overflow
func TestCaesarHugeShift(t *testing.T) {
	want := Caesar("aZ", math.MaxInt%26)
	if got := Caesar("aZ", math.MaxInt); got != want {
		t.Errorf("Caesar(%q, MaxInt) = %q, want %q", "aZ", got, want)
	}
	if got := Caesar("abc", 26*1000+1); got != "bcd" {
		t.Errorf("Caesar(%q, 26001) = %q, want %q", "abc", got, "bcd")
	}
}

// TestCaesarRoundTrip tests that shifting by n then -n restores the message
func TestCaesarRoundTrip(t *testing.T) {
	message := "The quick brown fox jumps over the lazy dog. 123!"
	for n := -26; n <= 26; n++ {
		if got := Caesar(Caesar(message, n), -n); got != message {
			t.Errorf("round trip with shift %d = %q", n, got)
		}
	}
}

// TestSymbol tests the substitution table and its involution
func TestSymbol(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    string
	}{
		{"all letters", "ilsoaebgtpcdfmnruyz", "!1$0@369+%()#~&^*€7"},
		{"all symbols", "!1$0@369+%()#~&^*€7", "ilsoaebgtpcdfmnruyz"},
		{"unmapped letters", "hjkqvwx", "hjkqvwx"},
		{"uppercase passthrough", "HELLO", "HELLO"},
		{"mixed", "Hello World", "H3110 W0^1)"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Symbol(tc.message)
			if got != tc.want {
				t.Errorf("Symbol(%q) = %q, want %q", tc.message, got, tc.want)
			}
			if back := Symbol(got); back != tc.message {
				t.Errorf("Symbol(Symbol(%q)) = %q", tc.message, back)
			}
		})
	}
}

// TestReverse tests per-word reversal
func TestReverse(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    string
	}{
		{"two words", "Hello World", "olleH dlroW"},
		{"single", "abc", "cba"},
		{"double space kept", "ab  cd", "ba  dc"},
		{"leading and trailing", " ab ", " ba "},
		{"tab is not a separator", "ab\tcd", "dc\tba"},
		{"multibyte", "héllo €x", "olléh x€"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Reverse(tc.message)
			if got != tc.want {
				t.Errorf("Reverse(%q) = %q, want %q", tc.message, got, tc.want)
			}
			if back := Reverse(got); back != tc.message {
				t.Errorf("Reverse(Reverse(%q)) = %q", tc.message, back)
			}
		})
	}
}

// TestVigenere tests encryption vectors and key handling
func TestVigenere(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		key     string
		want    string
	}{
		{"reference vector", "ABC", "key", "KFA"},
		{"uppercase key", "ABC", "KEY", "KFA"},
		{"punctuation does not advance key", "Hello, World!", "key", "Rijvs, Uyvjn!"},
		{"key a is identity", "Hello", "a", "Hello"},
		{"digits passthrough", "a1b2c3", "b", "b1c2d3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Vigenere(tc.message, tc.key, false)
			if err != nil {
				t.Fatalf("Vigenere failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("Vigenere(%q, %q) = %q, want %q", tc.message, tc.key, got, tc.want)
			}

			back, err := Vigenere(got, tc.key, true)
			if err != nil {
				t.Fatalf("Vigenere decrypt failed: %v", err)
			}
			if back != tc.message {
				t.Errorf("decrypt = %q, want %q", back, tc.message)
			}
		})
	}
}

// TestVigenereInvalidKey tests key validation
func TestVigenereInvalidKey(t *testing.T) {
	for _, key := range []string{"", "k3y", "key word", "ключ", "key!"} {
		t.Run(key, func(t *testing.T) {
			_, err := Vigenere("message", key, false)
			if !stderrors.Is(err, apperrors.ErrInvalidKey) {
				t.Errorf("Vigenere with key %q: err = %v, want InvalidKey", key, err)
			}
		})
	}
}

// TestBase64 tests encoding, decoding and failure kinds
func TestBase64(t *testing.T) {
	encoded, err := Base64Encode("Hello World")
	if err != nil {
		t.Fatalf("Base64Encode failed: %v", err)
	}
	if encoded != "SGVsbG8gV29ybGQ=" {
		t.Errorf("Base64Encode = %q", encoded)
	}

	decodeCases := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{"padded", "SGVsbG8gV29ybGQ=", "Hello World", nil},
		{"unpadded", "SGVsbG8gV29ybGQ", "Hello World", nil},
		{"unicode", "aMOpbGxvIOKCrA==", "héllo €", nil},
		{"empty", "", "", apperrors.ErrInvalidInput},
		{"bad alphabet", "SGVs bG8=", "", apperrors.ErrInvalidFormat},
		{"url alphabet", "SGVs-G8_", "", apperrors.ErrInvalidFormat},
		{"too much padding", "SGVsbA===", "", apperrors.ErrInvalidFormat},
		{"impossible length", "SGVsb", "", apperrors.ErrInvalidFormat},
		{"invalid utf-8", "/w==", "", apperrors.ErrDecode},
	}

	for _, tc := range decodeCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Base64Decode(tc.text)
			if tc.wantErr != nil {
				if !stderrors.Is(err, tc.wantErr) {
					t.Errorf("Base64Decode(%q) err = %v, want %v", tc.text, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Base64Decode(%q) failed: %v", tc.text, err)
			}
			if got != tc.want {
				t.Errorf("Base64Decode(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}

	if _, err := Base64Encode(""); !stderrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Base64Encode(\"\") err = %v, want InvalidInput", err)
	}
}

// TestSHA256 tests against known vectors
func TestSHA256(t *testing.T) {
	got, err := SHA256("abc")
	if err != nil {
		t.Fatalf("SHA256 failed: %v", err)
	}
	if got != "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad" {
		t.Errorf("SHA256(abc) = %s", got)
	}

	if _, err := SHA256(""); !stderrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("SHA256(\"\") err = %v, want InvalidInput", err)
	}
}

// TestStreamCipherX tests the keystream XOR
func TestStreamCipherX(t *testing.T) {
	const key = "supersecretkey"

	if ks := Keystream(key); ks != "e706386a58190ee13247ffc85c07f5fee617aed1e339cd935e64bab32bfe8fc8" {
		t.Errorf("Keystream = %s", ks)
	}

	got, err := StreamCipherX("Hello", key)
	if err != nil {
		t.Fatalf("StreamCipherX failed: %v", err)
	}
	if got != "-R\\Z\\" {
		t.Errorf("StreamCipherX(Hello) = %q", got)
	}

	back, err := StreamCipherX(got, key)
	if err != nil {
		t.Fatalf("StreamCipherX second pass failed: %v", err)
	}
	if back != "Hello" {
		t.Errorf("round trip = %q", back)
	}
}

// TestStreamCipherXLongMessage tests keystream cycling beyond 64 characters
func TestStreamCipherXLongMessage(t *testing.T) {
	message := strings.Repeat("cipherium €", 20)
	key := strings.Repeat("k", len([]rune(message)))

	enc, err := StreamCipherX(message, key)
	if err != nil {
		t.Fatalf("StreamCipherX failed: %v", err)
	}
	dec, err := StreamCipherX(enc, key)
	if err != nil {
		t.Fatalf("StreamCipherX failed: %v", err)
	}
	if dec != message {
		t.Error("round trip over cycled keystream failed")
	}
}

// TestStreamCipherXKeyTooShort tests the key length rule
func TestStreamCipherXKeyTooShort(t *testing.T) {
	_, err := StreamCipherX("Hello", "abcd")
	if !stderrors.Is(err, apperrors.ErrKeyTooShort) {
		t.Errorf("err = %v, want KeyTooShort", err)
	}

	// Length counts characters, not bytes
	if _, err := StreamCipherX("€€€", "abc"); err != nil {
		t.Errorf("3-char key for 3-char message: %v", err)
	}
}

// TestKeyedDigests tests KeyStretchHash and DoubleHashChain vectors
func TestKeyedDigests(t *testing.T) {
	if got := KeyStretchHash("hello", "secret"); got != "0ee42245323ab5b26965b863ca1704ad9463558333e3561bef8f654e0e711535" {
		t.Errorf("KeyStretchHash = %s", got)
	}
	if got := DoubleHashChain("hello", "secret"); got != "a522d51e30ae60230358872c30ccec037098802fee21b3c4b692bb2cc443c23d" {
		t.Errorf("DoubleHashChain = %s", got)
	}

	if KeyStretchHash("hello", "secret") == KeyStretchHash("hello", "secreT") {
		t.Error("KeyStretchHash should depend on key")
	}
	if DoubleHashChain("hello", "secret") == DoubleHashChain("hellO", "secret") {
		t.Error("DoubleHashChain should depend on message")
	}
}

// TestMatrixMixer tests the reference vector, padding and key rule
func TestMatrixMixer(t *testing.T) {
	got, err := MatrixMixer("abc", "abcdefghi")
	if err != nil {
		t.Fatalf("MatrixMixer failed: %v", err)
	}
	// M = [[3 4 5] [1 2 3] [4 5 1]], v = [97 98 99]
	if got != "\u009aNÑ" {
		t.Errorf("MatrixMixer(abc) = %q", got)
	}

	padded, err := MatrixMixer("abcd", "abcdefghi")
	if err != nil {
		t.Fatalf("MatrixMixer failed: %v", err)
	}
	if n := len([]rune(padded)); n != 6 {
		t.Errorf("padded output length = %d, want 6", n)
	}
	// 'd' then two NULs: [3*100, 1*100, 4*100] mod 256
	if tail := []rune(padded)[3:]; tail[0] != 44 || tail[1] != 100 || tail[2] != 144 {
		t.Errorf("padded block = %v", tail)
	}

	empty, err := MatrixMixer("", "abcdefghi")
	if err != nil || empty != "" {
		t.Errorf("MatrixMixer(\"\") = %q, %v", empty, err)
	}

	if _, err := MatrixMixer("abc", "shortkey"); !stderrors.Is(err, apperrors.ErrInvalidKey) {
		t.Errorf("8-char key err = %v, want InvalidKey", err)
	}
}

// TestSuperPipeline tests the composed encoder
func TestSuperPipeline(t *testing.T) {
	encoded, err := SuperEncode("Hello World")
	if err != nil {
		t.Fatalf("SuperEncode failed: %v", err)
	}
	if encoded != "K2FvblcgIWF1K0Y=" {
		t.Errorf("SuperEncode = %q", encoded)
	}

	messages := []string{
		"Hello World",
		"The quick brown fox jumps over the lazy dog",
		"Numbers 0123456789 and symbols !@#$%^&*()",
		"tabs\tand  double spaces",
		"ünïcödé €uro",
	}
	for _, m := range messages {
		t.Run(m, func(t *testing.T) {
			enc, err := SuperEncode(m)
			if err != nil {
				t.Fatalf("SuperEncode failed: %v", err)
			}
			dec, err := SuperDecode(enc)
			if err != nil {
				t.Fatalf("SuperDecode failed: %v", err)
			}
			if dec != m {
				t.Errorf("round trip = %q, want %q", dec, m)
			}
		})
	}

	if _, err := SuperEncode(""); !stderrors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("SuperEncode(\"\") err = %v", err)
	}
	if _, err := SuperDecode("not base64!"); !stderrors.Is(err, apperrors.ErrInvalidFormat) {
		t.Errorf("SuperDecode(garbage) err = %v", err)
	}
}
