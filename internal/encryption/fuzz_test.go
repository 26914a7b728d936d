package encryption

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzCaesarRoundTrip fuzzes shift/unshift over the normalised range
func FuzzCaesarRoundTrip(f *testing.F) {
	f.Add("Hello, World!", 3)
	f.Add("", 0)
	f.Add("xyz XYZ", -26)
	f.Add("日本語 abc", 13)

	f.Fuzz(func(t *testing.T, message string, shift int) {
		if !utf8.ValidString(message) {
			return
		}
		shift %= 27
		if got := Caesar(Caesar(message, shift), -shift); got != message {
			t.Errorf("Caesar round trip failed for shift %d: %q", shift, got)
		}
	})
}

// FuzzVigenereRoundTrip fuzzes encrypt/decrypt with letter keys
func FuzzVigenereRoundTrip(f *testing.F) {
	f.Add("Attack at dawn!", "lemon")
	f.Add("", "k")
	f.Add("ünïcödé", "KEY")

	f.Fuzz(func(t *testing.T, message string, key string) {
		if !utf8.ValidString(message) || ValidateVigenereKey(key) != nil {
			return
		}
		enc, err := Vigenere(message, key, false)
		if err != nil {
			t.Fatalf("encrypt failed: %v", err)
		}
		dec, err := Vigenere(enc, key, true)
		if err != nil {
			t.Fatalf("decrypt failed: %v", err)
		}
		if dec != message {
			t.Errorf("Vigenere round trip failed: got %q, want %q", dec, message)
		}
	})
}

// FuzzStreamCipherX fuzzes the XOR involution
func FuzzStreamCipherX(f *testing.F) {
	f.Add("Hello", "supersecretkey")
	f.Add("", "")
	f.Add("€uro", "four")

	f.Fuzz(func(t *testing.T, message string, key string) {
		if !utf8.ValidString(message) || ValidateStreamKey(message, key) != nil {
			return
		}
		enc, err := StreamCipherX(message, key)
		if err != nil {
			t.Fatalf("StreamCipherX failed: %v", err)
		}
		dec, err := StreamCipherX(enc, key)
		if err != nil {
			t.Fatalf("StreamCipherX failed: %v", err)
		}
		if dec != message {
			t.Errorf("StreamCipherX round trip failed: got %q, want %q", dec, message)
		}
	})
}

// FuzzSuperPipeline fuzzes the composed encoder over NUL-free text
func FuzzSuperPipeline(f *testing.F) {
	f.Add("Hello World")
	f.Add("tabs\tand  spaces")
	f.Add("1337 $p3@k")

	f.Fuzz(func(t *testing.T, message string) {
		if message == "" || !utf8.ValidString(message) || strings.ContainsRune(message, 0) {
			return
		}
		enc, err := SuperEncode(message)
		if err != nil {
			t.Fatalf("SuperEncode failed: %v", err)
		}
		dec, err := SuperDecode(enc)
		if err != nil {
			t.Fatalf("SuperDecode failed: %v", err)
		}
		if dec != message {
			t.Errorf("super round trip failed: got %q, want %q", dec, message)
		}
	})
}
