package fraci

import "testing"

func newDecimalAlgebra(t *testing.T) *stringAlgebra {
	t.Helper()
	digits, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	return newStringAlgebra(digits, digits, 50)
}

func ptr(s string) *string { return &s }

// TestGenerateKeyBetweenEmptyBounds is spec.md §8 scenario 1.
func TestGenerateKeyBetweenEmptyBounds(t *testing.T) {
	s := newDecimalAlgebra(t)
	k, err := s.generateKeyBetween(nil, nil)
	if err != nil {
		t.Fatalf("generateKeyBetween(nil, nil): %v", err)
	}
	if k != "50" {
		t.Fatalf("generateKeyBetween(nil, nil) = %q, want %q", k, "50")
	}
}

// TestGenerateKeyBetweenAppend is spec.md §8 scenario 2, through the
// single-digit run "51".."59". The length-widen step beyond "59" is
// covered separately in TestGenerateKeyBetweenAppendWidensLength, since
// spec.md's own worked example for that step ("6100") does not square
// with its stated encoding (a length-2 positive tier holds exactly two
// digits, not three) — see DESIGN.md's worked-example discrepancy note.
func TestGenerateKeyBetweenAppend(t *testing.T) {
	s := newDecimalAlgebra(t)
	cur := "50"
	for _, want := range []string{"51", "52", "53", "54", "55", "56", "57", "58", "59"} {
		k, err := s.generateKeyBetween(ptr(cur), nil)
		if err != nil {
			t.Fatalf("generateKeyBetween(%q, nil): %v", cur, err)
		}
		if k != want {
			t.Fatalf("generateKeyBetween(%q, nil) = %q, want %q", cur, k, want)
		}
		cur = k
	}
}

func TestGenerateKeyBetweenAppendWidensLength(t *testing.T) {
	s := newDecimalAlgebra(t)
	k, err := s.generateKeyBetween(ptr("59"), nil)
	if err != nil {
		t.Fatalf("generateKeyBetween(%q, nil): %v", "59", err)
	}
	if k != "600" {
		t.Fatalf("generateKeyBetween(%q, nil) = %q, want %q (length symbol '6' encodes +2, followed by two minimum digits)", "59", k, "600")
	}
}

// TestGenerateKeyBetweenPrepend is spec.md §8 scenario 3.
func TestGenerateKeyBetweenPrepend(t *testing.T) {
	s := newDecimalAlgebra(t)
	k, err := s.generateKeyBetween(nil, ptr("50"))
	if err != nil {
		t.Fatalf("generateKeyBetween(nil, %q): %v", "50", err)
	}
	if k != "49" {
		t.Fatalf("generateKeyBetween(nil, %q) = %q, want %q", "50", k, "49")
	}
}

// TestGenerateKeyBetweenMidpoint is spec.md §8 scenario 4.
func TestGenerateKeyBetweenMidpoint(t *testing.T) {
	s := newDecimalAlgebra(t)
	k, err := s.generateKeyBetween(ptr("50"), ptr("51"))
	if err != nil {
		t.Fatalf("generateKeyBetween(50, 51): %v", err)
	}
	if k != "505" {
		t.Fatalf("generateKeyBetween(50, 51) = %q, want %q", k, "505")
	}
	k2, err := s.generateKeyBetween(ptr("50"), ptr(k))
	if err != nil {
		t.Fatalf("generateKeyBetween(50, %q): %v", k, err)
	}
	if k2 != "502" {
		t.Fatalf("generateKeyBetween(50, %q) = %q, want %q", k, k2, "502")
	}
}

// TestGenerateNKeysBetween is spec.md §8 scenario 5.
func TestGenerateNKeysBetween(t *testing.T) {
	s := newDecimalAlgebra(t)
	keys, err := s.generateNKeysBetween(nil, nil, 3)
	if err != nil {
		t.Fatalf("generateNKeysBetween: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("len(keys) = %d, want 3", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		// Keys are designed to be sortable by plain code-point (string)
		// order, matching the store's native text collation (spec.md §6).
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not strictly increasing: %q >= %q", keys[i-1], keys[i])
		}
	}
}

func TestGenerateNKeysBetweenZero(t *testing.T) {
	s := newDecimalAlgebra(t)
	keys, err := s.generateNKeysBetween(nil, nil, 0)
	if err != nil {
		t.Fatalf("generateNKeysBetween(n=0): %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("len(keys) = %d, want 0", len(keys))
	}
}

func TestGenerateNKeysBetweenCountIsExact(t *testing.T) {
	s := newDecimalAlgebra(t)
	for n := 1; n <= 12; n++ {
		keys, err := s.generateNKeysBetween(nil, nil, n)
		if err != nil {
			t.Fatalf("generateNKeysBetween(n=%d): %v", n, err)
		}
		if len(keys) != n {
			t.Fatalf("generateNKeysBetween(n=%d) produced %d keys", n, len(keys))
		}
	}
}

// TestCollisionRetrySequence is spec.md §8 scenario 6.
func TestCollisionRetrySequence(t *testing.T) {
	s := newDecimalAlgebra(t)
	gen := newRawGenerator(s.generateKeyBetween, ptr("50"), (*string)(nil), 5)

	c1, ok := gen.next()
	if !ok {
		t.Fatalf("first candidate failed: %v", gen.lastErr())
	}
	if c1 != "51" {
		t.Fatalf("first candidate = %q, want %q", c1, "51")
	}

	c2, ok := gen.next()
	if !ok {
		t.Fatalf("second candidate failed: %v", gen.lastErr())
	}
	if c2 != "505" {
		t.Fatalf("second candidate = %q, want %q", c2, "505")
	}
}

func TestGenerateKeyBetweenRejectsLoGreaterThanHi(t *testing.T) {
	s := newDecimalAlgebra(t)
	if _, err := s.generateKeyBetween(ptr("51"), ptr("50")); err == nil {
		t.Fatalf("expected an error when lo >= hi")
	} else if err.Code != ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err.Code)
	}
}

func TestIsValid(t *testing.T) {
	s := newDecimalAlgebra(t)
	if !s.isValid("50") {
		t.Errorf("isValid(%q) = false, want true", "50")
	}
	if s.isValid("") {
		t.Errorf("isValid(\"\") = true, want false")
	}
	if s.isValid("5x") {
		t.Errorf("isValid(%q) = true, want false (unknown symbol)", "5x")
	}
	// A tail ending in the minimum digit is never canonical: it could
	// always be shortened by one digit without changing order.
	if s.isValid("500") {
		t.Errorf("isValid(%q) = true, want false (tail ends in minimum digit)", "500")
	}
}

func TestIsValidRejectsExcessLength(t *testing.T) {
	digits, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	s := newStringAlgebra(digits, digits, 3)
	if s.isValid("5000") {
		t.Errorf("isValid on a 4-symbol key against MaxLength 3 = true, want false")
	}
}

func TestGenerateKeyBetweenDistinctAlphabets(t *testing.T) {
	digitBase, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	lengthBase, err := NewAlphabet("0123456789abcdef")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	s := newStringAlgebra(digitBase, lengthBase, 50)
	k, genErr := s.generateKeyBetween(nil, nil)
	if genErr != nil {
		t.Fatalf("generateKeyBetween(nil, nil): %v", genErr)
	}
	if !s.isValid(k) {
		t.Errorf("isValid(%q) = false, want true", k)
	}
}
