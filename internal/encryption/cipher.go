package encryption

// OpType names a registered transform
type OpType string

const (
	OpCaesar          OpType = "caesar"
	OpSymbol          OpType = "symbol"
	OpReverse         OpType = "reverse"
	OpVigenere        OpType = "vigenere"
	OpBase64Encode    OpType = "base64-encode"
	OpBase64Decode    OpType = "base64-decode"
	OpSHA256          OpType = "sha256"
	OpStreamCipherX   OpType = "streamcipherx"
	OpKeyStretchHash  OpType = "keystretchhash"
	OpMatrixMixer     OpType = "matrixmixer"
	OpDoubleHashChain OpType = "doublehashchain"
	OpSuperEncode     OpType = "super-encode"
	OpSuperDecode     OpType = "super-decode"
	OpSuperHash       OpType = "super-hash"
)

// Params is the structured parameter set shared by every transform.
// Fields a transform does not use are ignored.
type Params struct {
	Amount  int    // Caesar shift
	Key     string // Vigenère, StreamCipherX, KeyStretchHash, MatrixMixer, DoubleHashChain
	Decrypt bool   // Vigenère direction
}

// Transform is a pure function over a message
type Transform func(message string, p Params) (string, error)

// KeyRule describes the shape a key must have before a transform is invoked
type KeyRule int

const (
	KeyNone KeyRule = iota
	// KeyAny accepts any string, including empty
	KeyAny
	// KeyLetters requires a non-empty ASCII-letter key
	KeyLetters
	// KeyMinLength requires at least MatrixKeyLength code points
	KeyMinLength
	// KeyCoversMessage requires at least as many code points as the message
	KeyCoversMessage
)

// Kind describes the algebraic nature of a transform
type Kind string

const (
	KindBijection   Kind = "bijection"
	KindSelfInverse Kind = "self-inverse"
	KindEncoding    Kind = "encoding"
	KindDigest      Kind = "digest"
	KindMixer       Kind = "mixer"
)

// Spec describes a registered transform and what a caller must collect for it
type Spec struct {
	Op          OpType
	Name        string
	Description string
	Kind        Kind
	NeedsShift  bool
	KeyRule     KeyRule
	Transform   Transform
}

// NeedsKey reports whether the caller must prompt for a key
func (s Spec) NeedsKey() bool {
	return s.KeyRule != KeyNone
}

// String returns a short label for listings
func (r KeyRule) String() string {
	switch r {
	case KeyAny:
		return "any"
	case KeyLetters:
		return "letters"
	case KeyMinLength:
		return "min-length"
	case KeyCoversMessage:
		return "covers-message"
	}
	return ""
}
