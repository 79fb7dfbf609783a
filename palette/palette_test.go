// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package palette

import "testing"

func TestEveryTokenHasAColor(t *testing.T) {
	for _, tok := range Tokens() {
		if Hex(tok) == "" {
			t.Errorf("token %q has no hex color", tok)
		}
		if !Valid(tok) {
			t.Errorf("token %q from Tokens() is not Valid", tok)
		}
	}
}

func TestSizeMatchesTokens(t *testing.T) {
	if Size() != len(Tokens()) {
		t.Errorf("Size() = %d, len(Tokens()) = %d", Size(), len(Tokens()))
	}
}

func TestUnknownTokenIsInvalid(t *testing.T) {
	if Valid(Token("chartreuse")) {
		t.Error("unknown token should not validate")
	}
	if Hex(Token("chartreuse")) != "" {
		t.Error("unknown token should have no color")
	}
}

func TestTokensReturnsACopy(t *testing.T) {
	a := Tokens()
	a[0] = Token("mutated")
	if Tokens()[0] == Token("mutated") {
		t.Error("Tokens() must not expose internal state")
	}
}
