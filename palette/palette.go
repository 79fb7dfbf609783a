// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package palette

// Token is one entry of the closed color palette. A token doubles as a
// participant's visual identity and, in the assigned-roster scheme, as a
// unique seat: at most one roster entry may hold a given token, so room
// capacity equals Size.
type Token string

const (
	Red    Token = "red"
	Orange Token = "orange"
	Yellow Token = "yellow"
	Green  Token = "green"
	Teal   Token = "teal"
	Blue   Token = "blue"
	Indigo Token = "indigo"
	Purple Token = "purple"
	Pink   Token = "pink"
	Brown  Token = "brown"
)

// tokens holds the palette in assignment order. AssignColor hands out the
// first token not present in the roster, so this order is the seat order.
var tokens = []Token{Red, Orange, Yellow, Green, Teal, Blue, Indigo, Purple, Pink, Brown}

var hexByToken = map[Token]string{
	Red:    "#e53935",
	Orange: "#fb8c00",
	Yellow: "#fdd835",
	Green:  "#43a047",
	Teal:   "#00897b",
	Blue:   "#1e88e5",
	Indigo: "#3949ab",
	Purple: "#8e24aa",
	Pink:   "#d81b60",
	Brown:  "#6d4c41",
}

// Size is the number of palette entries, and therefore the roster capacity
// of a capacity-bounded room.
func Size() int {
	return len(tokens)
}

// Tokens returns the palette in assignment order. The returned slice is a
// copy; callers may reorder it freely.
func Tokens() []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}

// Hex returns the display color for a token, or "" for an unknown token.
func Hex(t Token) string {
	return hexByToken[t]
}

// Valid reports whether t is a member of the palette. Tokens read back from
// storage go through this before being trusted.
func Valid(t Token) bool {
	_, ok := hexByToken[t]
	return ok
}
