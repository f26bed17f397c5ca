package daftar

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  Money
		ok    bool
	}{
		{name: "plain", input: "1500000", want: M(1500000), ok: true},
		{name: "grouped", input: "1,500,000", want: M(1500000), ok: true},
		{name: "surrounding whitespace", input: "  42,000 ", want: M(42000), ok: true},
		{name: "inner spaces", input: "1 500 000", want: M(1500000), ok: true},
		{name: "zero", input: "0", want: M(0), ok: true},
		{name: "empty", input: "", ok: false},
		{name: "not a number", input: "abc", ok: false},
		{name: "negative", input: "-100", ok: false},
		{name: "fractional", input: "10.5", ok: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.ok != (err == nil) {
				t.Fatalf("ParseAmount(%q) error = %v, want ok=%v", tc.input, err, tc.ok)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tc.input, err)
				}
				return
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	testCases := []struct {
		amount Money
		want   string
	}{
		{M(0), "0"},
		{M(999), "999"},
		{M(1000), "1,000"},
		{M(1500000), "1,500,000"},
		{M(1500000).Neg(), "-1,500,000"},
	}
	for _, tc := range testCases {
		if got := tc.amount.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

// TestAmountRoundTrip asserts the round-trip law: parsing a formatted amount
// yields the amount back.
func TestAmountRoundTrip(t *testing.T) {
	for _, v := range []int{0, 1, 999, 1000, 10000, 123456789, 1000000000} {
		m := M(v)
		got, err := ParseAmount(m.String())
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", m.String(), err)
		}
		if !got.Equal(m) {
			t.Errorf("round trip of %d: got %s", v, got)
		}
	}
}

func TestSignedString(t *testing.T) {
	if got := M(0).SignedString(); got != "-" {
		t.Errorf("zero SignedString() = %q, want %q", got, "-")
	}
	if got := M(500).SignedString(); got != "+500" {
		t.Errorf("positive SignedString() = %q, want %q", got, "+500")
	}
	if got := M(500).Neg().SignedString(); got != "-500" {
		t.Errorf("negative SignedString() = %q, want %q", got, "-500")
	}
}
