package fraci

const (
	defaultMaxLength  = 50
	defaultMaxRetries = 5
)

// StringConfig configures a string-keyed handle (spec.md §4.5). DigitBase
// and LengthBase are required; they may be the same Alphabet value or two
// different ones. MaxLength and MaxRetries default to 50 and 5 when zero.
type StringConfig struct {
	DigitBase  *Alphabet
	LengthBase *Alphabet
	MaxLength  int
	MaxRetries int
}

// BinaryConfig configures a binary-keyed handle. The alphabet is implicitly
// the full 0x00..0xFF range, so there is nothing to validate beyond the
// limits.
type BinaryConfig struct {
	MaxLength  int
	MaxRetries int
}

// StringFraci is an immutable handle produced by NewStringFraci, offering
// the operations spec.md §6 calls generate_key_between, generate_n_keys_
// between, and is_valid. Brand is a phantom marker distinguishing handles
// (and the keys they produce) bound to different columns.
type StringFraci[Brand any] struct {
	algebra    *stringAlgebra
	maxRetries int
}

// NewStringFraci returns a reusable handle over DigitBase and LengthBase.
// The alphabets themselves are validated by NewAlphabet (C1), so this
// constructor fails, with ErrInitializationFailed, only when either
// alphabet is nil.
func NewStringFraci[Brand any](cfg StringConfig) (*StringFraci[Brand], error) {
	if cfg.DigitBase == nil {
		return nil, errInitializationFailed("DigitBase is required")
	}
	if cfg.LengthBase == nil {
		return nil, errInitializationFailed("LengthBase is required")
	}
	maxLength := cfg.MaxLength
	if maxLength == 0 {
		maxLength = defaultMaxLength
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	return &StringFraci[Brand]{
		algebra:    newStringAlgebra(cfg.DigitBase, cfg.LengthBase, maxLength),
		maxRetries: maxRetries,
	}, nil
}

func rawOf[Brand any](k *StringKey[Brand]) *string {
	if k == nil {
		return nil
	}
	s := string(*k)
	return &s
}

// GenerateKeyBetween implements spec.md §4.2's generateKeyBetween. lo and
// hi nil mean "no lower/upper bound" respectively.
func (f *StringFraci[Brand]) GenerateKeyBetween(lo, hi *StringKey[Brand]) (StringKey[Brand], error) {
	k, err := f.algebra.generateKeyBetween(rawOf(lo), rawOf(hi))
	if err != nil {
		return "", err
	}
	return StringKey[Brand](k), nil
}

// GenerateNKeysBetween implements spec.md §4.2's generateNKeysBetween.
func (f *StringFraci[Brand]) GenerateNKeysBetween(lo, hi *StringKey[Brand], n int) ([]StringKey[Brand], error) {
	raw, err := f.algebra.generateNKeysBetween(rawOf(lo), rawOf(hi), n)
	if err != nil {
		return nil, err
	}
	out := make([]StringKey[Brand], len(raw))
	for i, s := range raw {
		out[i] = StringKey[Brand](s)
	}
	return out, nil
}

// IsValid reports whether k decodes, is in canonical form, and is within
// MaxLength.
func (f *StringFraci[Brand]) IsValid(k StringKey[Brand]) bool {
	return f.algebra.isValid(string(k))
}

// Parse validates raw — typically a key read back from a store, such as
// one of the plain strings storeprobe.IndicesForFirst and its siblings
// return — and brands it as StringKey[Brand]. This is the entry point
// spec.md §4.7 describes for ErrInvalidFractionalIndex: an externally
// supplied key that fails IsValid is rejected here rather than trusted.
func (f *StringFraci[Brand]) Parse(raw string) (StringKey[Brand], error) {
	if !f.algebra.isValid(raw) {
		return "", errInvalidFractionalIndex("key %q failed validation", raw)
	}
	return StringKey[Brand](raw), nil
}

// StringGenerator is the restartable retry-candidate stream (C4) for
// string keys.
type StringGenerator[Brand any] struct {
	raw *rawGenerator[string]
}

// Next returns the next retry candidate. ok is false once MaxRetries
// candidates have been produced or a candidate would exceed MaxLength; in
// the latter case Err returns the failure.
func (g *StringGenerator[Brand]) Next() (StringKey[Brand], bool) {
	s, ok := g.raw.next()
	return StringKey[Brand](s), ok
}

// Err returns the error that ended the sequence early, if any.
func (g *StringGenerator[Brand]) Err() error {
	if e := g.raw.lastErr(); e != nil {
		return e
	}
	return nil
}

// Generate returns a fresh, restartable candidate generator for (lo, hi).
// Calling Generate(lo, hi) twice and draining both with Next produces
// identical sequences.
func (f *StringFraci[Brand]) Generate(lo, hi *StringKey[Brand]) *StringGenerator[Brand] {
	return &StringGenerator[Brand]{
		raw: newRawGenerator(f.algebra.generateKeyBetween, rawOf(lo), rawOf(hi), f.maxRetries),
	}
}

// BinaryFraci is the byte-string analog of StringFraci.
type BinaryFraci[Brand any] struct {
	algebra    *binaryAlgebra
	maxRetries int
}

// NewBinaryFraci returns a reusable handle over the implicit 0x00..0xFF
// alphabet.
func NewBinaryFraci[Brand any](cfg BinaryConfig) (*BinaryFraci[Brand], error) {
	maxLength := cfg.MaxLength
	if maxLength == 0 {
		maxLength = defaultMaxLength
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = defaultMaxRetries
	}
	return &BinaryFraci[Brand]{
		algebra:    newBinaryAlgebra(maxLength),
		maxRetries: maxRetries,
	}, nil
}

func rawBytesOf[Brand any](k *BinaryKey[Brand]) *[]byte {
	if k == nil {
		return nil
	}
	b := []byte(*k)
	return &b
}

// GenerateKeyBetween implements spec.md §4.2's algorithm over the binary
// representation (§4.3).
func (f *BinaryFraci[Brand]) GenerateKeyBetween(lo, hi *BinaryKey[Brand]) (BinaryKey[Brand], error) {
	k, err := f.algebra.generateKeyBetween(rawBytesOf(lo), rawBytesOf(hi))
	if err != nil {
		return nil, err
	}
	return BinaryKey[Brand](k), nil
}

// GenerateNKeysBetween is the binary analog of StringFraci's method of the
// same name.
func (f *BinaryFraci[Brand]) GenerateNKeysBetween(lo, hi *BinaryKey[Brand], n int) ([]BinaryKey[Brand], error) {
	raw, err := f.algebra.generateNKeysBetween(rawBytesOf(lo), rawBytesOf(hi), n)
	if err != nil {
		return nil, err
	}
	out := make([]BinaryKey[Brand], len(raw))
	for i, b := range raw {
		out[i] = BinaryKey[Brand](b)
	}
	return out, nil
}

// IsValid is the binary analog of StringFraci's method of the same name.
func (f *BinaryFraci[Brand]) IsValid(k BinaryKey[Brand]) bool {
	return f.algebra.isValid([]byte(k))
}

// Parse is the binary analog of StringFraci.Parse.
func (f *BinaryFraci[Brand]) Parse(raw []byte) (BinaryKey[Brand], error) {
	if !f.algebra.isValid(raw) {
		return nil, errInvalidFractionalIndex("key %x failed validation", raw)
	}
	return BinaryKey[Brand](raw), nil
}

// BinaryGenerator is the binary analog of StringGenerator.
type BinaryGenerator[Brand any] struct {
	raw *rawGenerator[[]byte]
}

// Next is the binary analog of StringGenerator.Next.
func (g *BinaryGenerator[Brand]) Next() (BinaryKey[Brand], bool) {
	b, ok := g.raw.next()
	return BinaryKey[Brand](b), ok
}

// Err is the binary analog of StringGenerator.Err.
func (g *BinaryGenerator[Brand]) Err() error {
	if e := g.raw.lastErr(); e != nil {
		return e
	}
	return nil
}

// Generate is the binary analog of StringFraci.Generate.
func (f *BinaryFraci[Brand]) Generate(lo, hi *BinaryKey[Brand]) *BinaryGenerator[Brand] {
	return &BinaryGenerator[Brand]{
		raw: newRawGenerator(f.algebra.generateKeyBetween, rawBytesOf(lo), rawBytesOf(hi), f.maxRetries),
	}
}
