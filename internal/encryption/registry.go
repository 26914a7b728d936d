package encryption

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	apperrors "github.com/cipherium-go/internal/errors"
)

// registry holds registered transforms
var (
	registryMu sync.RWMutex
	registry   = make(map[OpType]Spec)
)

func init() {
	// Register built-in transforms
	Register(Spec{
		Op: OpCaesar, Name: "Caesar", Kind: KindBijection, NeedsShift: true,
		Description: "shift letters by an integer amount",
		Transform: func(m string, p Params) (string, error) {
			return Caesar(m, p.Amount), nil
		},
	})
	Register(Spec{
		Op: OpSymbol, Name: "Symbol", Kind: KindSelfInverse,
		Description: "swap letters and look-alike symbols",
		Transform: func(m string, _ Params) (string, error) {
			return Symbol(m), nil
		},
	})
	Register(Spec{
		Op: OpReverse, Name: "Reverse", Kind: KindSelfInverse,
		Description: "reverse every space-separated word",
		Transform: func(m string, _ Params) (string, error) {
			return Reverse(m), nil
		},
	})
	Register(Spec{
		Op: OpVigenere, Name: "Vigenère", Kind: KindBijection, KeyRule: KeyLetters,
		Description: "polyalphabetic shift keyed by a letters-only key",
		Transform: func(m string, p Params) (string, error) {
			return Vigenere(m, p.Key, p.Decrypt)
		},
	})
	Register(Spec{
		Op: OpBase64Encode, Name: "Base64 Encode", Kind: KindEncoding,
		Description: "standard Base64 of the UTF-8 bytes",
		Transform: func(m string, _ Params) (string, error) {
			return Base64Encode(m)
		},
	})
	Register(Spec{
		Op: OpBase64Decode, Name: "Base64 Decode", Kind: KindEncoding,
		Description: "decode standard Base64 to UTF-8 text",
		Transform: func(m string, _ Params) (string, error) {
			return Base64Decode(m)
		},
	})
	Register(Spec{
		Op: OpSHA256, Name: "SHA256", Kind: KindDigest,
		Description: "lowercase hex SHA-256 digest",
		Transform: func(m string, _ Params) (string, error) {
			return SHA256(m)
		},
	})
	Register(Spec{
		Op: OpStreamCipherX, Name: "StreamCipherX", Kind: KindSelfInverse, KeyRule: KeyCoversMessage,
		Description: "XOR with a SHA-256 keystream; run again to decode",
		Transform: func(m string, p Params) (string, error) {
			return StreamCipherX(m, p.Key)
		},
	})
	Register(Spec{
		Op: OpKeyStretchHash, Name: "KeyStretchHash", Kind: KindDigest, KeyRule: KeyAny,
		Description: "keyed digest over a 5x stretched key",
		Transform: func(m string, p Params) (string, error) {
			return KeyStretchHash(m, p.Key), nil
		},
	})
	Register(Spec{
		Op: OpMatrixMixer, Name: "MatrixMixer", Kind: KindMixer, KeyRule: KeyMinLength,
		Description: "3x3 key matrix mixing, one-way",
		Transform: func(m string, p Params) (string, error) {
			return MatrixMixer(m, p.Key)
		},
	})
	Register(Spec{
		Op: OpDoubleHashChain, Name: "DoubleHashChain", Kind: KindDigest, KeyRule: KeyAny,
		Description: "SHA256(SHA256(key+message)+key)",
		Transform: func(m string, p Params) (string, error) {
			return DoubleHashChain(m, p.Key), nil
		},
	})
	Register(Spec{
		Op: OpSuperEncode, Name: "Super Encode", Kind: KindEncoding,
		Description: "Caesar(5), Symbol, Vigenère(key), Reverse, Base64",
		Transform: func(m string, _ Params) (string, error) {
			return SuperEncode(m)
		},
	})
	Register(Spec{
		Op: OpSuperDecode, Name: "Super Decode", Kind: KindEncoding,
		Description: "inverse of super-encode",
		Transform: func(m string, _ Params) (string, error) {
			return SuperDecode(m)
		},
	})
	Register(Spec{
		Op: OpSuperHash, Name: "Super Hash", Kind: KindDigest,
		Description: "SHA-256 digest of the message",
		Transform: func(m string, _ Params) (string, error) {
			return SuperHash(m)
		},
	})
}

// Register adds a transform to the registry, replacing any previous entry
func Register(spec Spec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[spec.Op] = spec
}

// Lookup returns the descriptor registered under op
func Lookup(op OpType) (Spec, error) {
	registryMu.RLock()
	spec, ok := registry[op]
	registryMu.RUnlock()

	if !ok {
		return Spec{}, apperrors.NewUnknownOperation(string(op))
	}
	return spec, nil
}

// Apply runs the transform registered under op
func Apply(op OpType, message string, p Params) (string, error) {
	spec, err := Lookup(op)
	if err != nil {
		return "", err
	}
	return spec.Transform(message, p)
}

// ListRegistered returns all registered transforms sorted by name
func ListRegistered() []Spec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	specs := make([]Spec, 0, len(registry))
	for _, s := range registry {
		specs = append(specs, s)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Op < specs[j].Op })
	return specs
}

// ParseShift parses a raw Caesar shift
func ParseShift(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.NewInvalidInput("shift must be a number")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewInvalidInputWithCause("shift must be a number", err)
	}
	return n, nil
}

// ValidateKey applies the operation's key rule before the transform is invoked.
// message is only consulted by KeyCoversMessage.
func ValidateKey(spec Spec, key, message string) error {
	switch spec.KeyRule {
	case KeyLetters:
		return ValidateVigenereKey(key)
	case KeyMinLength:
		return ValidateMatrixKey(key)
	case KeyCoversMessage:
		return ValidateStreamKey(message, key)
	}
	return nil
}
