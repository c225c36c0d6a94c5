package fraci

import "strings"

// stringAlgebra is the string-key algebra (C2): encode/decode, compare,
// increment, and midpoint for keys drawn from a digitBase alphabet (digit
// symbols) and a lengthBase alphabet (the single length symbol that opens
// the integer part). The two alphabets may be the same value or different
// ones; nothing here assumes they coincide.
type stringAlgebra struct {
	digits    *Alphabet
	lengths   *Alphabet
	maxLength int
}

func newStringAlgebra(digits, lengths *Alphabet, maxLength int) *stringAlgebra {
	return &stringAlgebra{digits: digits, lengths: lengths, maxLength: maxLength}
}

// decodeDigits maps a rune slice through the digit alphabet, failing with
// ErrInternal on an unknown symbol (parse is only ever called on keys this
// package produced or that passed IsValid).
func (s *stringAlgebra) decodeDigits(runes []rune) ([]int, *Error) {
	out := make([]int, len(runes))
	for i, r := range runes {
		v, ok := s.digits.DigitValue(r)
		if !ok {
			return nil, errInternal("unknown digit symbol %q", r)
		}
		out[i] = v
	}
	return out, nil
}

func (s *stringAlgebra) encodeDigits(digits []int) []rune {
	out := make([]rune, len(digits))
	for i, v := range digits {
		out[i] = s.digits.DigitSymbol(v)
	}
	return out
}

// parseInteger decodes a full key's integer part (length + digits) and its
// fractional tail.
func (s *stringAlgebra) parseInteger(key string) (length int, intDigits, tailDigits []int, err *Error) {
	runes := []rune(key)
	if len(runes) == 0 {
		return 0, nil, nil, errInternal("key has no integer part")
	}
	length, ok := s.lengths.SymbolLength(runes[0])
	if !ok {
		return 0, nil, nil, errInternal("unknown length symbol %q", runes[0])
	}
	m := length
	if m < 0 {
		m = -m
	}
	if len(runes) < 1+m {
		return 0, nil, nil, errInternal("integer part truncated: need %d digits, have %d", m, len(runes)-1)
	}
	intDigits, e := s.decodeDigits(runes[1 : 1+m])
	if e != nil {
		return 0, nil, nil, e
	}
	tailDigits, e = s.decodeDigits(runes[1+m:])
	if e != nil {
		return 0, nil, nil, e
	}
	return length, intDigits, tailDigits, nil
}

func (s *stringAlgebra) encodeKey(length int, intDigits, tailDigits []int) string {
	lenSym, ok := s.lengths.LengthSymbol(length)
	if !ok {
		panic("fraci: encodeKey called with unrepresentable length")
	}
	var b strings.Builder
	b.WriteRune(lenSym)
	for _, r := range s.encodeDigits(intDigits) {
		b.WriteRune(r)
	}
	for _, r := range s.encodeDigits(tailDigits) {
		b.WriteRune(r)
	}
	return b.String()
}

// smallestInteger returns the lexicographically smallest canonical integer
// key: the most-negative length symbol followed by the maximum digit
// repeated that many times.
func (s *stringAlgebra) smallestInteger() string {
	length := s.lengths.MaxNegativeLength()
	m := -length
	return s.encodeKey(length, allDigits(s.digits.MaxDigit(), m), nil)
}

func (s *stringAlgebra) zeroKey() string {
	return s.encodeKey(1, []int{0}, nil)
}

func (s *stringAlgebra) incrementInteger(length int, digits []int) (int, []int, bool) {
	return incrementInteger(s.lengths, s.digits.Base(), length, digits)
}

func (s *stringAlgebra) decrementInteger(length int, digits []int) (int, []int, bool) {
	return decrementInteger(s.lengths, s.digits.Base(), length, digits)
}

// midpoint is the exported-in-spirit core of §4.2's midpoint(a, b): a and b
// are digit-index tails with a < b (or b unbounded, representing "∅").
// remaining is the number of symbols left in the overall key's MaxLength
// budget.
func (s *stringAlgebra) midpoint(a, b []int, bUnbounded bool, remaining int) ([]int, *Error) {
	return midpointTail(a, b, bUnbounded, s.digits.MaxDigit(), remaining)
}

// generateKeyBetween implements spec.md §4.2's five-case table.
func (s *stringAlgebra) generateKeyBetween(lo, hi *string) (string, *Error) {
	switch {
	case lo == nil && hi == nil:
		return s.zeroKey(), nil

	case lo == nil:
		hiLen, hiInt, hiTail, err := s.parseInteger(*hi)
		if err != nil {
			return "", err
		}
		if len(hiTail) == 0 {
			nl, nd, ok := s.decrementInteger(hiLen, hiInt)
			if !ok {
				return "", errLengthExceeded("cannot decrement below the smallest representable integer")
			}
			if err := s.checkLength(nl, nd, nil); err != nil {
				return "", err
			}
			return s.encodeKey(nl, nd, nil), nil
		}
		remaining := s.maxLength - (1 + len(hiInt))
		m, err := s.midpoint(nil, hiTail, false, remaining)
		if err != nil {
			return "", err
		}
		return s.encodeKey(hiLen, hiInt, m), nil

	case hi == nil:
		loLen, loInt, loTail, err := s.parseInteger(*lo)
		if err != nil {
			return "", err
		}
		if len(loTail) == 0 {
			nl, nd, ok := s.incrementInteger(loLen, loInt)
			if !ok {
				return "", errLengthExceeded("cannot increment past the largest representable integer")
			}
			if err := s.checkLength(nl, nd, nil); err != nil {
				return "", err
			}
			return s.encodeKey(nl, nd, nil), nil
		}
		remaining := s.maxLength - (1 + len(loInt))
		m, err := s.midpoint(loTail, nil, true, remaining)
		if err != nil {
			return "", err
		}
		return s.encodeKey(loLen, loInt, m), nil

	default:
		loLen, loInt, loTail, err := s.parseInteger(*lo)
		if err != nil {
			return "", err
		}
		hiLen, hiInt, hiTail, err := s.parseInteger(*hi)
		if err != nil {
			return "", err
		}
		if compareInteger(loLen, loInt, hiLen, hiInt) > 0 {
			return "", errInternal("generateKeyBetween requires lo < hi")
		}
		if loLen == hiLen && compareIntDigits(loInt, hiInt) == 0 {
			// Same integer part: canonical tails order like the raw keys.
			if *lo >= *hi {
				return "", errInternal("generateKeyBetween requires lo < hi")
			}
			remaining := s.maxLength - (1 + len(loInt))
			m, err := s.midpoint(loTail, hiTail, false, remaining)
			if err != nil {
				return "", err
			}
			return s.encodeKey(loLen, loInt, m), nil
		}
		if incLen, incInt, ok := s.incrementInteger(loLen, loInt); ok &&
			compareInteger(incLen, incInt, hiLen, hiInt) < 0 {
			if err := s.checkLength(incLen, incInt, nil); err != nil {
				return "", err
			}
			return s.encodeKey(incLen, incInt, nil), nil
		}
		// Integer parts are adjacent: split the space above lo's tail.
		remaining := s.maxLength - (1 + len(loInt))
		m, err := s.midpoint(loTail, nil, true, remaining)
		if err != nil {
			return "", err
		}
		return s.encodeKey(loLen, loInt, m), nil
	}
}

func (s *stringAlgebra) checkLength(length int, intDigits, tailDigits []int) *Error {
	total := 1 + len(intDigits) + len(tailDigits)
	if total > s.maxLength {
		return errLengthExceeded("key would be %d symbols, exceeding MaxLength %d", total, s.maxLength)
	}
	return nil
}

// generateNKeysBetween implements §4.2's bisection: split around the
// midpoint, recurse on the two halves with ceil(n/2) and floor(n/2) keys.
func (s *stringAlgebra) generateNKeysBetween(lo, hi *string, n int) ([]string, *Error) {
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		k, err := s.generateKeyBetween(lo, hi)
		if err != nil {
			return nil, err
		}
		return []string{k}, nil
	}
	mid, err := s.generateKeyBetween(lo, hi)
	if err != nil {
		return nil, err
	}
	remaining := n - 1
	nLo := (remaining + 1) / 2 // ceil(remaining/2)
	nHi := remaining / 2       // floor(remaining/2)
	lower, err := s.generateNKeysBetween(lo, &mid, nLo)
	if err != nil {
		return nil, err
	}
	upper, err := s.generateNKeysBetween(&mid, hi, nHi)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	result = append(result, lower...)
	result = append(result, mid)
	result = append(result, upper...)
	return result, nil
}

// isValid parses key and checks canonical form: known symbols throughout,
// a complete integer part, a tail that never ends in the minimum digit, and
// total length within MaxLength.
func (s *stringAlgebra) isValid(key string) bool {
	if len([]rune(key)) > s.maxLength {
		return false
	}
	_, _, tail, err := s.parseInteger(key)
	if err != nil {
		return false
	}
	if len(tail) > 0 && tail[len(tail)-1] == 0 {
		return false
	}
	return true
}
