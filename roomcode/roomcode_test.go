// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roomcode

import (
	"net/url"
	"strings"
	"testing"
)

func TestGenerateAlwaysValidates(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := Generate()
		if !Validate(string(code)) {
			t.Fatalf("generated code %q fails validation", code)
		}
	}
}

func TestGenerateAltAlwaysValidates(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateAlt()
		if !ValidateAlt(string(code)) {
			t.Fatalf("generated alt code %q fails validation", code)
		}
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []struct {
		name      string
		candidate string
	}{
		{"empty", ""},
		{"too short", "12345A"},
		{"too long", "1234567A"},
		{"lowercase letter", "123456a"},
		{"letter first", "A123456"},
		{"all digits", "1234567"},
		{"all letters", "ABCDEFG"},
		{"leading space", " 123456A"},
		{"trailing space", "123456A "},
		{"trailing newline", "123456A\n"},
		{"embedded in text", "x123456Ax"},
		{"unicode digit lookalike", "１23456A"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if Validate(tc.candidate) {
				t.Errorf("Validate(%q) = true, want false", tc.candidate)
			}
		})
	}
}

// Mutating any single position of a valid code out of its character class
// must fail validation.
func TestValidateRejectsMutations(t *testing.T) {
	code := "493817Q"
	for i := 0; i < len(code); i++ {
		mutated := code[:i] + "!" + code[i+1:]
		if Validate(mutated) {
			t.Errorf("Validate(%q) = true, want false", mutated)
		}
	}
	// Swap the letter and a digit
	if Validate("49381Q7") {
		t.Error("letter in digit position should not validate")
	}
}

func TestResolveFromLocatorMintsWhenAbsent(t *testing.T) {
	u, _ := url.Parse("https://quepasa.test/")

	code, rewritten := ResolveFromLocator(u)
	if !rewritten {
		t.Fatal("expected rewrite for locator without a room parameter")
	}
	if !Validate(string(code)) {
		t.Fatalf("minted code %q is invalid", code)
	}
	if got := u.Query().Get(Param); got != string(code) {
		t.Errorf("locator carries %q, want %q", got, code)
	}
}

func TestResolveFromLocatorMintsWhenInvalid(t *testing.T) {
	u, _ := url.Parse("https://quepasa.test/?room=banana")

	code, rewritten := ResolveFromLocator(u)
	if !rewritten {
		t.Fatal("expected rewrite for invalid room parameter")
	}
	if string(code) == "banana" {
		t.Error("invalid code must not be adopted")
	}
}

func TestResolveFromLocatorIsIdempotent(t *testing.T) {
	u, _ := url.Parse("https://quepasa.test/?x=1")

	first, _ := ResolveFromLocator(u)
	before := u.String()

	second, rewritten := ResolveFromLocator(u)
	if rewritten {
		t.Error("second resolution must not rewrite")
	}
	if first != second {
		t.Errorf("second resolution returned %q, want %q", second, first)
	}
	if u.String() != before {
		t.Errorf("locator changed on second resolution: %q -> %q", before, u.String())
	}
}

func TestSwitchLocatorLeavesOriginalUntouched(t *testing.T) {
	u, _ := url.Parse("https://quepasa.test/?room=123456A")

	next := SwitchLocator(u, "654321B")
	if got := next.Query().Get(Param); got != "654321B" {
		t.Errorf("switched locator carries %q, want 654321B", got)
	}
	if got := u.Query().Get(Param); got != "123456A" {
		t.Errorf("original locator mutated: %q", got)
	}
	if !strings.HasPrefix(next.String(), "https://quepasa.test/") {
		t.Errorf("switched locator lost its base: %q", next)
	}
}
