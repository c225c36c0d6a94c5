package fraci

// intspine holds the length/digit arithmetic shared by the string algebra
// (C2) and the binary algebra (C3): incrementing and decrementing a signed,
// length-prefixed integer part, and computing the midpoint of two
// fractional tails. Both algebras represent digits as plain ints (a rune's
// digit value for strings, a raw byte value 0..255 for binary) so this
// file never needs to know which concrete symbol alphabet is in play.

// lengthCodec maps a signed integer-length to and from the symbol (as an
// int) that encodes it, and reports the representable range. *Alphabet
// implements it directly for the string algebra; the binary algebra uses
// its fixed single-byte header scheme instead (see binary_key.go).
type lengthCodec interface {
	encodeLength(length int) (sym int, ok bool)
	decodeLength(sym int) (length int, ok bool)
	maxPositiveLength() int
	maxNegativeLength() int
}

func (a *Alphabet) encodeLength(length int) (int, bool) {
	r, ok := a.LengthSymbol(length)
	return int(r), ok
}

func (a *Alphabet) decodeLength(sym int) (int, bool) {
	return a.SymbolLength(rune(sym))
}

func (a *Alphabet) maxPositiveLength() int { return a.MaxPositiveLength() }
func (a *Alphabet) maxNegativeLength() int { return a.MaxNegativeLength() }

// incrementIntDigits adds one to digits (a fixed-length base-B odometer,
// most significant digit first) in place on a copy. overflow is true when
// every digit was already base-1, meaning the increment needs to widen to
// the next length tier (see incrementInteger).
func incrementIntDigits(digits []int, base int) (result []int, overflow bool) {
	result = append([]int(nil), digits...)
	for i := len(result) - 1; i >= 0; i-- {
		if result[i] < base-1 {
			result[i]++
			return result, false
		}
		result[i] = 0
	}
	return result, true
}

// decrementIntDigits subtracts one from digits. underflow is true when
// every digit was already 0, meaning the decrement needs to widen (or
// cross zero) to a different length tier.
func decrementIntDigits(digits []int, base int) (result []int, underflow bool) {
	result = append([]int(nil), digits...)
	for i := len(result) - 1; i >= 0; i-- {
		if result[i] > 0 {
			result[i]--
			return result, false
		}
		result[i] = base - 1
	}
	return result, true
}

func allDigits(value, n int) []int {
	d := make([]int, n)
	for i := range d {
		d[i] = value
	}
	return d
}

// incrementInteger computes the next integer's (length, digits) pair.
//
// Within a length tier, incrementing is a plain base-B odometer step. On
// overflow: a positive tier widens to the next larger magnitude with all
// digits at the minimum; a negative tier of magnitude 1 crosses zero into
// the canonical positive encoding of zero; a negative tier of magnitude >1
// shrinks to the next smaller magnitude with all digits at the minimum.
// Returns ok=false only when a positive widen would exceed the length
// alphabet's representable range — the maximum representable length has
// been reached (spec §9's open question: treated as exhaustion here, and
// callers fold that into ErrLengthExceeded).
func incrementInteger(lc lengthCodec, base int, length int, digits []int) (newLength int, newDigits []int, ok bool) {
	next, overflow := incrementIntDigits(digits, base)
	if !overflow {
		return length, next, true
	}
	switch {
	case length > 0:
		nl := length + 1
		if nl > lc.maxPositiveLength() {
			return 0, nil, false
		}
		return nl, allDigits(0, len(digits)+1), true
	case length == -1:
		return 1, allDigits(0, 1), true
	default: // length < -1
		nl := length + 1
		return nl, allDigits(0, len(digits)-1), true
	}
}

// decrementInteger is the mirror of incrementInteger: a positive tier of
// magnitude 1 underflows into the canonical negative tier of magnitude 1 at
// its maximum digit pattern; a positive tier of magnitude >1 shrinks; a
// negative tier widens to the next larger magnitude at its maximum digit
// pattern. Returns ok=false when a negative widen would exceed the length
// alphabet's representable range.
func decrementInteger(lc lengthCodec, base int, length int, digits []int) (newLength int, newDigits []int, ok bool) {
	prev, underflow := decrementIntDigits(digits, base)
	if !underflow {
		return length, prev, true
	}
	switch {
	case length < 0:
		nl := length - 1
		if nl < lc.maxNegativeLength() {
			return 0, nil, false
		}
		return nl, allDigits(base-1, len(digits)+1), true
	case length == 1:
		return -1, allDigits(base-1, 1), true
	default: // length > 1
		nl := length - 1
		return nl, allDigits(base-1, len(digits)-1), true
	}
}

// compareIntDigits lexicographically compares two equal-length digit
// slices, returning -1, 0, or 1.
func compareIntDigits(a, b []int) int {
	for i := range a {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// compareInteger compares two signed (length, digits) integer parts: by
// length first (this works because length symbols are assigned in
// increasing order with increasing signed length, so plain int comparison
// of length already matches the intended total order), then lexicographic
// digit comparison when lengths match.
func compareInteger(lenA int, digitsA []int, lenB int, digitsB []int) int {
	if lenA != lenB {
		if lenA < lenB {
			return -1
		}
		return 1
	}
	return compareIntDigits(digitsA, digitsB)
}

// padDigit returns the digit at position i of digits, or pad if i is past
// the end.
func padDigit(digits []int, i, pad int) int {
	if i < len(digits) {
		return digits[i]
	}
	return pad
}

// midpointTail implements spec.md §4.2's midpoint(a, b) over digit-index
// tails: a < b under the padded-zero order (or b is treated as an
// unbounded run of maxDigit when bUnbounded is true, modeling the "∅"
// upper bound of generateKeyBetween's adjacent-integer and append cases).
// budget bounds the number of digits the result may grow to; exceeding it
// reports ErrLengthExceeded.
func midpointTail(a, b []int, bUnbounded bool, maxDigit, budget int) ([]int, *Error) {
	var result []int
	i := 0
	for {
		if i >= budget {
			return nil, errLengthExceeded("midpoint would require more than %d tail digits", budget)
		}
		da := padDigit(a, i, 0)
		db := maxDigit + 1
		if !bUnbounded {
			db = padDigit(b, i, 0)
		}
		if da == db {
			result = append(result, da)
			i++
			continue
		}
		// da < db is guaranteed by the lo < hi precondition.
		if db-da >= 2 {
			result = append(result, (da+db)/2)
			return result, nil
		}
		// db == da+1: the digit at this position already separates a and
		// b, so b no longer constrains anything past it — only a and the
		// alphabet ceiling matter from here on.
		result = append(result, da)
		i++
		for {
			if i >= budget {
				return nil, errLengthExceeded("midpoint would require more than %d tail digits", budget)
			}
			da2 := padDigit(a, i, 0)
			if da2 < maxDigit-1 {
				result = append(result, (da2+maxDigit)/2)
				return result, nil
			}
			result = append(result, da2)
			i++
		}
	}
}
