package fraci

import "testing"

func TestNewAlphabetRejectsTooFewSymbols(t *testing.T) {
	if _, err := NewAlphabet("abc"); err == nil {
		t.Fatalf("expected an error for a 3-symbol alphabet")
	} else if err.(*Error).Code != ErrInitializationFailed {
		t.Fatalf("expected ErrInitializationFailed, got %v", err.(*Error).Code)
	}
}

func TestNewAlphabetRejectsUnordered(t *testing.T) {
	if _, err := NewAlphabet("badc"); err == nil {
		t.Fatalf("expected an error for out-of-order symbols")
	}
}

func TestNewAlphabetRejectsDuplicates(t *testing.T) {
	if _, err := NewAlphabet("aabc"); err == nil {
		t.Fatalf("expected an error for duplicate symbols")
	}
}

func TestNewAlphabetAcceptsMinimal(t *testing.T) {
	a, err := NewAlphabet("0123")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if a.Base() != 4 {
		t.Fatalf("Base() = %d, want 4", a.Base())
	}
}

func TestAlphabetDigitRoundTrip(t *testing.T) {
	a, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	for v := 0; v < a.Base(); v++ {
		sym := a.DigitSymbol(v)
		got, ok := a.DigitValue(sym)
		if !ok || got != v {
			t.Errorf("DigitValue(DigitSymbol(%d)) = (%d, %v), want (%d, true)", v, got, ok, v)
		}
	}
}

func TestAlphabetLengthSplit(t *testing.T) {
	a, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if a.MaxPositiveLength() != 5 {
		t.Errorf("MaxPositiveLength() = %d, want 5", a.MaxPositiveLength())
	}
	if a.MaxNegativeLength() != -5 {
		t.Errorf("MaxNegativeLength() = %d, want -5", a.MaxNegativeLength())
	}
	if sym := a.ZeroLengthSymbol(); sym != '5' {
		t.Errorf("ZeroLengthSymbol() = %q, want '5'", sym)
	}
	// Length zero is never assigned to any symbol.
	for _, r := range []rune("0123456789") {
		l, ok := a.SymbolLength(r)
		if ok && l == 0 {
			t.Errorf("symbol %q must not be assigned length 0, got length %d", r, l)
		}
	}
}

func TestAlphabetContains(t *testing.T) {
	a, err := NewAlphabet("0123456789")
	if err != nil {
		t.Fatalf("NewAlphabet: %v", err)
	}
	if !a.Contains('5') {
		t.Errorf("Contains('5') = false, want true")
	}
	if a.Contains('x') {
		t.Errorf("Contains('x') = true, want false")
	}
}
