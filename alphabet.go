package fraci

// Alphabet is an ordered set of symbols used to build the two lookup
// structures a key algebra needs: a digit map (symbol <-> digit value
// 0..B-1) and a length map (signed integer-length <-> symbol). A single
// Alphabet value can serve as either a digitBase, a lengthBase, or both at
// once — the factory decides which role each alphabet plays.
//
// An Alphabet is immutable once built; the zero value is not usable, use
// NewAlphabet.
type Alphabet struct {
	symbols []rune
	index   map[rune]int // symbol -> digit value 0..B-1

	half            int         // split point for length-map use: floor(B/2)
	symbolForLength map[int]rune // signed length -> symbol
	lengthForSymbol map[rune]int // symbol -> signed length
}

// NewAlphabet validates symbols and builds both lookup structures.
//
// Rejected with ErrInitializationFailed when there are fewer than four
// distinct symbols, or when the symbols are not in strictly ascending
// code-point order (duplicates count as disorder). Four is the floor
// because two symbols encode the length sign pair (+1, -1), a third is
// needed for the midpoint "splittable" digit between the two closest
// fractional neighbors, and a fourth gives increment headroom so it
// doesn't immediately overflow at single-digit lengths.
func NewAlphabet(symbols string) (*Alphabet, error) {
	runes := []rune(symbols)
	if len(runes) < 4 {
		return nil, errInitializationFailed("alphabet must have at least 4 symbols, got %d", len(runes))
	}
	for i := 1; i < len(runes); i++ {
		if runes[i] <= runes[i-1] {
			return nil, errInitializationFailed(
				"alphabet symbols must be in strictly ascending code-point order: %q at position %d is not greater than %q",
				runes[i], i, runes[i-1],
			)
		}
	}

	a := &Alphabet{
		symbols:         runes,
		index:           make(map[rune]int, len(runes)),
		symbolForLength: make(map[int]rune, len(runes)),
		lengthForSymbol: make(map[rune]int, len(runes)),
	}
	a.half = len(runes) / 2
	for i, r := range runes {
		a.index[r] = i
		length := i - a.half
		if i >= a.half {
			length++ // skip the never-used length 0
		}
		a.symbolForLength[length] = r
		a.lengthForSymbol[r] = length
	}
	return a, nil
}

// Base returns the number of distinct symbols, B.
func (a *Alphabet) Base() int { return len(a.symbols) }

// MaxDigit returns the digit value of the last symbol, B-1.
func (a *Alphabet) MaxDigit() int { return len(a.symbols) - 1 }

// Contains reports whether r is a symbol of this alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// DigitValue returns the digit value (0..B-1) of symbol r when used as a
// digit alphabet.
func (a *Alphabet) DigitValue(r rune) (int, bool) {
	v, ok := a.index[r]
	return v, ok
}

// DigitSymbol returns the symbol for digit value v (0..B-1).
func (a *Alphabet) DigitSymbol(v int) rune { return a.symbols[v] }

// MinPositiveLength is the smallest positive length this alphabet can
// encode when used as a length base: always +1.
func (a *Alphabet) MinPositiveLength() int { return 1 }

// MaxPositiveLength is the largest positive length this alphabet can
// encode when used as a length base: ceil(B/2).
func (a *Alphabet) MaxPositiveLength() int { return len(a.symbols) - a.half }

// MaxNegativeLength is the largest-magnitude (most negative) length this
// alphabet can encode when used as a length base: -floor(B/2).
func (a *Alphabet) MaxNegativeLength() int { return -a.half }

// LengthSymbol returns the symbol assigned to signed length, or 0,false if
// length is out of this alphabet's representable range.
func (a *Alphabet) LengthSymbol(length int) (rune, bool) {
	r, ok := a.symbolForLength[length]
	return r, ok
}

// SymbolLength returns the signed length assigned to symbol r, or 0,false
// if r is not a symbol of this alphabet.
func (a *Alphabet) SymbolLength(r rune) (int, bool) {
	l, ok := a.lengthForSymbol[r]
	return l, ok
}

// ZeroLengthSymbol is the length-alphabet symbol for length +1 — the
// length of the canonical encoding of integer zero.
func (a *Alphabet) ZeroLengthSymbol() rune {
	return a.symbolForLength[1]
}
